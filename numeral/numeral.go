// numeral/numeral.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package numeral converts spelled-out numbers in normalized text to digit
// strings: direct number words, compound forms ("twenty-one", "vingt-et-un"),
// the French quatre-vingt addition rule, and the Swiss French tens
// (septante/huitante/nonante) under fr-CH.
package numeral

import (
	"strconv"
	"strings"

	"github.com/comanda-voice/comanda/lexicon"
)

// Converter converts number words for one language variant.
type Converter struct {
	lang string

	// words maps direct number words to values (0-19, tens, regional tens).
	words map[string]int

	// scales are multiplier words (hundred/thousand, cent/mille).
	scales map[string]int

	// ones are accepted after a tens word or joining "et"/"and"; French
	// needs this because "un"/"une" are articles everywhere else.
	ones map[string]int

	// quantityNouns is the whitelist of nouns before which an indefinite
	// article converts to a number ("a dozen" -> 12, "une douzaine" -> 12).
	// The value is what the article+noun pair evaluates to.
	quantityNouns map[string]int

	// articles are the ambiguous short words converted only inside the
	// quantityNouns whitelist.
	articles map[string]bool
}

var englishWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"dozen": 12,
}

var frenchWords = map[string]int{
	"zéro": 0, "zero": 0, "deux": 2, "trois": 3, "quatre": 4,
	"cinq": 5, "six": 6, "sept": 7, "huit": 8, "neuf": 9,
	"dix": 10, "onze": 11, "douze": 12, "treize": 13, "quatorze": 14,
	"quinze": 15, "seize": 16, "dix-sept": 17, "dix-huit": 18, "dix-neuf": 19,
	"vingt": 20, "vingts": 20, "trente": 30, "quarante": 40, "cinquante": 50,
	"soixante": 60,
}

// swissTens are direct tens in fr-CH; metropolitan French builds the same
// values as compounds (soixante-dix, quatre-vingts, quatre-vingt-dix).
var swissTens = map[string]int{
	"septante": 70,
	"huitante": 80,
	"octante":  80,
	"nonante":  90,
}

// ForVariant builds the converter for a variant.
func ForVariant(v lexicon.Variant) *Converter {
	if v.Language() == "fr" {
		words := make(map[string]int, len(frenchWords)+len(swissTens))
		for w, n := range frenchWords {
			words[w] = n
		}
		if v == lexicon.FrCH {
			for w, n := range swissTens {
				words[w] = n
			}
		}
		return &Converter{
			lang:   "fr",
			words:  words,
			scales: map[string]int{"cent": 100, "cents": 100, "mille": 1000},
			ones:   map[string]int{"un": 1, "une": 1},
			quantityNouns: map[string]int{
				"douzaine": 12, "douzaines": 12,
				"centaine": 100, "centaines": 100,
				"cent": 100, "mille": 1000,
				"millier": 1000, "milliers": 1000,
			},
			articles: map[string]bool{"un": true, "une": true},
		}
	}
	return &Converter{
		lang:   "en",
		words:  englishWords,
		scales: map[string]int{"hundred": 100, "thousand": 1000},
		ones:   map[string]int{"one": 1},
		quantityNouns: map[string]int{
			"dozen": 12, "hundred": 100, "thousand": 1000,
		},
		articles: map[string]bool{"a": true, "an": true},
	}
}

// Convert rewrites spelled-out numbers in text as digit strings and returns
// the number of conversions. Words that are not numbers in their position
// (including bare articles) pass through unchanged.
func (c *Converter) Convert(text string) (string, int) {
	if text == "" {
		return text, 0
	}
	words := c.splitNumberTokens(strings.Fields(text))
	out := make([]string, 0, len(words))
	count := 0

	for i := 0; i < len(words); {
		// Indefinite article before a quantity noun.
		if c.articles[words[i]] && i+1 < len(words) {
			if v, ok := c.quantityNouns[words[i+1]]; ok {
				out = append(out, strconv.Itoa(v))
				i += 2
				count++
				continue
			}
		}

		if v, consumed := c.parseSeq(words, i); consumed > 0 {
			out = append(out, strconv.Itoa(v))
			i += consumed
			count++
			continue
		}

		out = append(out, words[i])
		i++
	}
	return strings.Join(out, " "), count
}

// splitNumberTokens breaks hyphenated compounds into separate words when
// every part is a number word or joiner, so "vingt-et-un" and "twenty-one"
// parse the same way as their spaced forms. Other hyphenated tokens
// ("croque-monsieur") are left intact.
func (c *Converter) splitNumberTokens(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		trimmed := strings.Trim(w, ".,!?;:")
		if !strings.Contains(trimmed, "-") || c.isNumberWord(trimmed) {
			out = append(out, w)
			continue
		}
		parts := strings.Split(trimmed, "-")
		numeric := len(parts) > 1
		for _, p := range parts {
			if !c.isNumberWord(p) && p != "et" && p != "and" {
				numeric = false
				break
			}
		}
		if numeric {
			out = append(out, parts...)
		} else {
			out = append(out, w)
		}
	}
	return out
}

func (c *Converter) isNumberWord(w string) bool {
	if _, ok := c.words[w]; ok {
		return true
	}
	if _, ok := c.scales[w]; ok {
		return true
	}
	if _, ok := c.ones[w]; ok {
		return true
	}
	return false
}

// parseSeq greedily parses a number starting at i and returns its value and
// the tokens consumed (0 if words[i] does not start a number).
func (c *Converter) parseSeq(words []string, i int) (int, int) {
	start := i
	total := -1

	for i < len(words) {
		w := strings.Trim(words[i], ".,!?;:")

		if (w == "et" || w == "and") && total >= 0 && i+1 < len(words) {
			next := strings.Trim(words[i+1], ".,!?;:")
			v, ok := c.ones[next]
			if !ok {
				v, ok = c.words[next]
			}
			if ok && c.canAppend(total, v) {
				total += v
				i += 2
				continue
			}
			break
		}

		if v, ok := c.words[w]; ok {
			if total < 0 {
				total = v
			} else if c.lang == "fr" && total == 4 && v == 20 {
				// quatre-vingt(s): multiplicative, then 1-19 may follow.
				total = 80
			} else if c.canAppend(total, v) {
				total += v
			} else {
				break
			}
			i++
			continue
		}

		// "un"/"une"/"one" directly after a tens word ("vingt un").
		if v, ok := c.ones[w]; ok && total >= 0 && c.canAppend(total, v) {
			total += v
			i++
			continue
		}

		if s, ok := c.scales[w]; ok {
			if total < 0 {
				total = s // bare "hundred"/"cent"
			} else {
				total *= s
			}
			i++
			continue
		}

		break
	}

	if total < 0 {
		return 0, 0
	}
	return total, i - start
}

// canAppend reports whether v can be added onto a partial total: ones after
// a round tens value, plus the French constructions that add 10-19 onto 60
// (soixante-dix ... soixante-dix-neuf) and 1-19 onto 80 (quatre-vingt-un
// through quatre-vingt-dix-neuf, which pass through 90 as an intermediate
// total).
func (c *Converter) canAppend(total, v int) bool {
	if total < 20 || total >= 1000 {
		return false
	}
	if total%10 == 0 && total < 100 && v >= 1 && v <= 9 {
		return true
	}
	if c.lang == "fr" {
		if (total == 60 || total == 80) && v >= 10 && v <= 19 {
			return true
		}
	}
	// Tens onto an exact hundreds/thousands total ("two hundred fifty").
	if total%100 == 0 && v >= 10 && v <= 99 {
		return true
	}
	return false
}
