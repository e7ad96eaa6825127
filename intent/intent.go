// intent/intent.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package intent classifies canonical utterances against a fixed command
// taxonomy and extracts structured order entities from them.
package intent

import "github.com/comanda-voice/comanda/lexicon"

// The fixed command taxonomy. Trigger phrases may be localized per variant
// but always map onto these intents.
const (
	Order   = "order"
	Add     = "add"
	Remove  = "remove"
	Change  = "change"
	Pay     = "pay"
	Help    = "help"
	Repeat  = "repeat"
	Cancel  = "cancel"
	Unknown = "unknown"
)

// Pattern is one intent and its trigger phrases. Both the pattern list and
// each phrase list are ordered; classification is first-match-wins in
// declaration order, which keeps results deterministic. A consequence is
// that a phrase sharing words with an earlier intent's phrase can be
// shadowed (see the taxonomy comments); that tie-break rule is part of the
// contract.
type Pattern struct {
	Intent  string
	Phrases []string
}

// TaxonomyFor returns the ordered intent patterns for a variant.
func TaxonomyFor(v lexicon.Variant) []Pattern {
	if v.Language() == "fr" {
		return taxonomyFR()
	}
	return taxonomyEN()
}

// Result is the outcome of classifying one utterance.
type Result struct {
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matchedPattern,omitempty"`
	OriginalText   string  `json:"originalText"`
	ProcessedText  string  `json:"processedText"`
}
