// engine/boost.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

import (
	"strings"

	"github.com/comanda-voice/comanda/lexicon"
	"github.com/comanda-voice/comanda/util"
)

// Context is a vocabulary mode that gates which substitutions are active.
type Context string

const (
	ContextNone       Context = ""
	ContextFood       Context = "food"
	ContextRestaurant Context = "restaurant"
)

// Food reports whether the context activates food vocabulary.
func (c Context) Food() bool {
	return c == ContextFood || c == ContextRestaurant
}

// BoostEntry is one runtime override mapping. FromContext marks entries
// bulk-loaded by SetContext as opposed to caller-added custom vocabulary.
type BoostEntry struct {
	Term        string  `json:"term" msgpack:"term"`
	Replacement string  `json:"replacement" msgpack:"replacement"`
	Confidence  float64 `json:"confidence,omitempty" msgpack:"confidence"`
	FromContext bool    `json:"-" msgpack:"-"`
}

// BoostStore holds the mutable override table consulted after the static
// lexicon stages. The compiled matcher is rebuilt on every mutation so the
// next processing call observes a consistent snapshot.
type BoostStore struct {
	entries []BoostEntry
	index   map[string]int // term -> position in entries
	matcher *lexicon.WordMatcher
}

func NewBoostStore() *BoostStore {
	b := &BoostStore{index: make(map[string]int)}
	b.recompile()
	return b
}

// Add inserts or updates an override.
func (b *BoostStore) Add(term, replacement string, confidence float64, fromContext bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	entry := BoostEntry{Term: term, Replacement: replacement, Confidence: confidence, FromContext: fromContext}
	if i, ok := b.index[term]; ok {
		b.entries[i] = entry
	} else {
		b.index[term] = len(b.entries)
		b.entries = append(b.entries, entry)
	}
	b.recompile()
}

// Remove deletes an override; reports whether it was present.
func (b *BoostStore) Remove(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	i, ok := b.index[term]
	if !ok {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	delete(b.index, term)
	for j := i; j < len(b.entries); j++ {
		b.index[b.entries[j].Term] = j
	}
	b.recompile()
	return true
}

// Clear empties the store.
func (b *BoostStore) Clear() {
	b.entries = nil
	b.index = make(map[string]int)
	b.recompile()
}

// LoadFood bulk-inserts the food lexicon as context-derived overrides.
// Idempotent: terms already present (including custom entries, which keep
// precedence) are left alone.
func (b *BoostStore) LoadFood(tables *lexicon.Tables) {
	changed := false
	for _, e := range tables.FoodEntries() {
		term := strings.ToLower(e.Source)
		if _, ok := b.index[term]; ok {
			continue
		}
		b.index[term] = len(b.entries)
		b.entries = append(b.entries, BoostEntry{
			Term:        term,
			Replacement: e.Canonical,
			FromContext: true,
		})
		changed = true
	}
	if changed {
		b.recompile()
	}
}

// PurgeContext removes the context-derived entries, keeping caller-added
// custom vocabulary and its relative order.
func (b *BoostStore) PurgeContext() {
	kept := util.FilterSlice(b.entries, func(e BoostEntry) bool { return !e.FromContext })
	if len(kept) == len(b.entries) {
		return
	}
	b.entries = kept
	b.index = make(map[string]int, len(kept))
	for i, e := range kept {
		b.index[e.Term] = i
	}
	b.recompile()
}

// Apply runs the override pass over text.
func (b *BoostStore) Apply(text string) (string, int) {
	return b.matcher.Replace(text)
}

// Custom returns the caller-added entries, for configuration export.
func (b *BoostStore) Custom() []BoostEntry {
	return util.FilterSlice(b.entries, func(e BoostEntry) bool { return !e.FromContext })
}

// Len returns the number of entries, context-derived included.
func (b *BoostStore) Len() int {
	return len(b.entries)
}

func (b *BoostStore) recompile() {
	m := make(map[string]string, len(b.entries))
	for _, e := range b.entries {
		m[e.Term] = e.Replacement
	}
	b.matcher = lexicon.CompileWordMap(m)
}
