// intent/entity.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

import (
	"sort"
	"strconv"
	"strings"

	"github.com/comanda-voice/comanda/lexicon"
)

// Food is a recognized food or drink term.
type Food struct {
	Name      string `json:"name"`      // matched term as it appears in the text
	Canonical string `json:"canonicalName"`
	Category  string `json:"category"`
	Position  int    `json:"position"` // character offset in the scanned text
}

// Number is a standalone numeric token.
type Number struct {
	Value    int `json:"value"`
	Position int `json:"position"`
}

// Modifier is an order modifier ("without", "extra", ...).
type Modifier struct {
	Type     string `json:"type"`
	Position int    `json:"position"`
}

// Size is a portion size.
type Size struct {
	Size     string `json:"size"`
	Position int    `json:"position"`
}

// CookingMethod is a preparation style.
type CookingMethod struct {
	Method   string `json:"method"`
	Position int    `json:"position"`
}

// Bag holds all entities extracted from one utterance. Categories are not
// mutually exclusive; one utterance can yield several foods plus a modifier
// and a size.
type Bag struct {
	Foods          []Food          `json:"foods"`
	Numbers        []Number        `json:"numbers"`
	Modifiers      []Modifier      `json:"modifiers"`
	Sizes          []Size          `json:"sizes"`
	CookingMethods []CookingMethod `json:"cookingMethods"`
}

// Extractor scans canonical text for order entities using the variant's food
// lexicon and small closed vocabularies for the other categories.
type Extractor struct {
	foods     []foodTerm // sorted longest term first
	modifiers map[string]string
	sizes     map[string]string
	methods   []string
}

type foodTerm struct {
	term      string
	canonical string
	category  string
}

// NewExtractor builds the extractor for a variant over its food tables.
func NewExtractor(v lexicon.Variant, tables *lexicon.Tables) *Extractor {
	e := &Extractor{}

	seen := make(map[string]bool)
	addFood := func(term, canonical, category string) {
		term = strings.ToLower(term)
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		if category == "" {
			category = lexicon.CategoryOf(canonical)
		}
		e.foods = append(e.foods, foodTerm{term: term, canonical: canonical, category: category})
	}
	for _, entry := range tables.Food {
		addFood(entry.Source, entry.Canonical, entry.Category)
		addFood(entry.Canonical, entry.Canonical, entry.Category)
	}
	sort.Slice(e.foods, func(i, j int) bool {
		if len(e.foods[i].term) != len(e.foods[j].term) {
			return len(e.foods[i].term) > len(e.foods[j].term)
		}
		return e.foods[i].term < e.foods[j].term
	})

	if v.Language() == "fr" {
		e.modifiers = modifiersFR
		e.sizes = sizesFR
		e.methods = methodsFR
	} else {
		e.modifiers = modifiersEN
		e.sizes = sizesEN
		e.methods = methodsEN
	}
	return e
}

// Extract scans text once per entity category. Positions are character
// offsets into the lowercased text.
func (e *Extractor) Extract(text string) Bag {
	var bag Bag
	text = strings.ToLower(text)
	if strings.TrimSpace(text) == "" {
		return bag
	}

	// Foods: longest term first, skipping spans already claimed so that
	// "french fries" does not also report "fries".
	claimed := make([]bool, len(text))
	for _, f := range e.foods {
		for _, pos := range wordOccurrences(text, f.term) {
			if claimed[pos] {
				continue
			}
			overlap := false
			for i := pos; i < pos+len(f.term); i++ {
				if claimed[i] {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			for i := pos; i < pos+len(f.term); i++ {
				claimed[i] = true
			}
			bag.Foods = append(bag.Foods, Food{
				Name:      f.term,
				Canonical: f.canonical,
				Category:  f.category,
				Position:  pos,
			})
		}
	}
	sort.Slice(bag.Foods, func(i, j int) bool { return bag.Foods[i].Position < bag.Foods[j].Position })

	// Numbers: standalone digit tokens (the numeral stage has already
	// converted spelled-out forms).
	for _, tok := range tokensWithOffsets(text) {
		if v, err := strconv.Atoi(strings.Trim(tok.text, ".,!?;:")); err == nil {
			bag.Numbers = append(bag.Numbers, Number{Value: v, Position: tok.offset})
		}
	}

	for term, typ := range e.modifiers {
		for _, pos := range wordOccurrences(text, term) {
			bag.Modifiers = append(bag.Modifiers, Modifier{Type: typ, Position: pos})
		}
	}
	sort.Slice(bag.Modifiers, func(i, j int) bool { return bag.Modifiers[i].Position < bag.Modifiers[j].Position })

	for term, size := range e.sizes {
		for _, pos := range wordOccurrences(text, term) {
			bag.Sizes = append(bag.Sizes, Size{Size: size, Position: pos})
		}
	}
	sort.Slice(bag.Sizes, func(i, j int) bool { return bag.Sizes[i].Position < bag.Sizes[j].Position })

	for _, m := range e.methods {
		for _, pos := range wordOccurrences(text, m) {
			bag.CookingMethods = append(bag.CookingMethods, CookingMethod{Method: m, Position: pos})
		}
	}
	sort.Slice(bag.CookingMethods, func(i, j int) bool {
		return bag.CookingMethods[i].Position < bag.CookingMethods[j].Position
	})

	return bag
}

type token struct {
	text   string
	offset int
}

func tokensWithOffsets(s string) []token {
	var toks []token
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				toks = append(toks, token{text: s[start:i], offset: start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: s[start:], offset: start})
	}
	return toks
}

// wordOccurrences finds every whole-word occurrence of term in text.
func wordOccurrences(text, term string) []int {
	var positions []int
	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			break
		}
		pos := from + i
		end := pos + len(term)
		beforeOK := pos == 0 || isBoundary(text[pos-1])
		afterOK := end == len(text) || isBoundary(text[end])
		if beforeOK && afterOK {
			positions = append(positions, pos)
		}
		from = pos + 1
	}
	return positions
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '.', ',', '!', '?', ';', ':', '(', ')':
		return true
	}
	return false
}
