// lexicon/lexicon.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package lexicon holds the static vocabulary tables for each supported
// language variant and the matchers compiled from them. Tables are immutable
// once loaded; all runtime mutation happens in the engine's boost store.
package lexicon

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Variant identifies a language/region configuration, e.g. "en-US" or "fr-CH".
type Variant string

const (
	EnUS Variant = "en-US"
	EnGB Variant = "en-GB"
	FrFR Variant = "fr-FR"
	FrCH Variant = "fr-CH"
)

// Supported returns the variants that have vocabulary tables.
func Supported() []Variant {
	return []Variant{EnUS, EnGB, FrFR, FrCH}
}

// Valid reports whether tables exist for the variant.
func (v Variant) Valid() bool {
	switch v {
	case EnUS, EnGB, FrFR, FrCH:
		return true
	}
	return false
}

// Language returns the bare language code ("en", "fr").
func (v Variant) Language() string {
	s := string(v)
	if i := strings.IndexByte(s, '-'); i != -1 {
		return s[:i]
	}
	return s
}

// Entry is a single source term to canonical term mapping. Category is only
// set for food entries.
type Entry struct {
	Source    string
	Canonical string
	Category  string
}

// Tables holds the static mapping tables for one variant.
type Tables struct {
	Variant Variant

	// Dialect maps regional terms to canonical terms ("chips" -> "french
	// fries" under en-US).
	Dialect map[string]string

	// Food maps spoken food/drink terms to canonical entries, keyed by the
	// source term.
	Food map[string]Entry

	// Common maps restaurant vocabulary that is corrected regardless of
	// context ("da" -> "the", "svp" -> "s'il vous plait").
	Common map[string]string

	// Phonetic maps common mispronunciation fragments to corrections.
	// Matched at the substring level, not whole-word.
	Phonetic map[string]string

	// Abbreviations are expanded during text normalization ("&" -> "and").
	Abbreviations map[string]string

	// ProperNouns lists lowercase terms that are re-capitalized during the
	// final cleanup pass (brands, wine and cheese regions).
	ProperNouns []string
}

// LoadTables returns the static tables for a variant. Unknown variants are an
// error; the caller must not fall back to a default.
func LoadTables(v Variant) (*Tables, error) {
	switch v {
	case EnUS, EnGB:
		return englishTables(v), nil
	case FrFR, FrCH:
		return frenchTables(v), nil
	}
	return nil, fmt.Errorf("%s: unsupported variant", v)
}

// FoodEntries returns the food table as a slice, for bulk-loading the boost
// store when a food context is set.
func (t *Tables) FoodEntries() []Entry {
	entries := make([]Entry, 0, len(t.Food))
	for _, e := range t.Food {
		entries = append(entries, e)
	}
	return entries
}

// Matchers holds the compiled matchers for one variant's tables.
type Matchers struct {
	Dialect  *WordMatcher
	Food     *WordMatcher
	Common   *WordMatcher
	Abbrev   *WordMatcher
	Phonetic *SubstringMatcher
}

// Compile builds the matcher set for a table set. Cost is proportional to the
// vocabulary size, so it is cheap enough to rerun on every variant switch.
func Compile(t *Tables) *Matchers {
	food := make(map[string]string, len(t.Food))
	for src, e := range t.Food {
		food[src] = e.Canonical
	}
	return &Matchers{
		Dialect:  CompileWordMap(t.Dialect),
		Food:     CompileWordMap(food),
		Common:   CompileWordMap(t.Common),
		Abbrev:   CompileWordMap(t.Abbreviations),
		Phonetic: CompileSubstringMap(t.Phonetic),
	}
}

type compiled struct {
	tables   *Tables
	matchers *Matchers
}

// Store loads tables on demand and keeps recently compiled matcher sets in an
// LRU so that switching back to a previous variant does not recompile.
type Store struct {
	cache *lru.Cache[Variant, *compiled]
}

func NewStore() *Store {
	// Four variants today; a little headroom for future ones.
	cache, _ := lru.New[Variant, *compiled](8)
	return &Store{cache: cache}
}

// Get returns the tables and compiled matchers for a variant.
func (s *Store) Get(v Variant) (*Tables, *Matchers, error) {
	if c, ok := s.cache.Get(v); ok {
		return c.tables, c.matchers, nil
	}
	tables, err := LoadTables(v)
	if err != nil {
		return nil, nil, err
	}
	c := &compiled{tables: tables, matchers: Compile(tables)}
	s.cache.Add(v, c)
	return c.tables, c.matchers, nil
}
