// intent/classify.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

import (
	"strings"

	"github.com/comanda-voice/comanda/grammar"
	"github.com/comanda-voice/comanda/lexicon"
	"github.com/comanda-voice/comanda/util"
)

// Bonuses and divisors for confidence scoring.
const (
	exactMatchBonus = 0.3
	lengthBonusMax  = 0.2
	contextBonus    = 0.1
	grammarBonus    = 0.1
	lengthDivisorEN = 12
	lengthDivisorFR = 15
)

// Classifier matches canonical text against the intent taxonomy of one
// variant.
type Classifier struct {
	patterns []Pattern
	grammar  grammar.Corrector
	divisor  int

	// strict requires the matched phrase to be a contiguous substring of
	// the text rather than a word subset.
	strict bool
}

// NewClassifier builds the classifier for a variant. g supplies the
// well-formedness test for the grammar confidence bonus.
func NewClassifier(v lexicon.Variant, g grammar.Corrector, strict bool) *Classifier {
	divisor := lengthDivisorEN
	if v.Language() == "fr" {
		divisor = lengthDivisorFR
	}
	return &Classifier{
		patterns: TaxonomyFor(v),
		grammar:  g,
		divisor:  divisor,
		strict:   strict,
	}
}

// Classify returns the first intent whose trigger phrases match the text,
// with a confidence in [0,1]. Unmatched text yields Unknown with confidence
// 0. restaurantContext enables the context confidence bonus.
func (c *Classifier) Classify(text string, restaurantContext bool) Result {
	original := text
	processed := collapseSpaces(strings.ToLower(strings.TrimSpace(text)))
	result := Result{
		Intent:        Unknown,
		OriginalText:  original,
		ProcessedText: processed,
	}
	if processed == "" {
		return result
	}

	words := strings.Fields(processed)
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[strings.Trim(w, ".,!?;:")] = true
	}

	for _, p := range c.patterns {
		for _, phrase := range p.Phrases {
			if !c.phraseMatches(processed, wordSet, phrase) {
				continue
			}
			result.Intent = p.Intent
			result.MatchedPattern = phrase
			result.Confidence = c.confidence(processed, wordSet, phrase, len(words), restaurantContext)
			return result
		}
	}
	return result
}

func (c *Classifier) phraseMatches(text string, wordSet map[string]bool, phrase string) bool {
	if c.strict {
		return strings.Contains(text, phrase)
	}
	for _, w := range strings.Fields(phrase) {
		if !wordSet[w] {
			return false
		}
	}
	return true
}

// confidence scores a matched (text, phrase) pair: the fraction of phrase
// words found in the text, an exact-substring bonus, a saturating
// length bonus, and context/grammar bonuses. Clamped to [0,1].
func (c *Classifier) confidence(text string, wordSet map[string]bool, phrase string, wordCount int, restaurantContext bool) float64 {
	phraseWords := strings.Fields(phrase)
	found := 0
	for _, w := range phraseWords {
		if wordSet[w] {
			found++
		}
	}
	conf := float64(found) / float64(len(phraseWords))

	if strings.Contains(text, phrase) {
		conf += exactMatchBonus
	}
	conf += min(lengthBonusMax, float64(wordCount)/float64(c.divisor)*lengthBonusMax)
	if restaurantContext {
		conf += contextBonus
	}
	if c.grammar.WellFormed(text) {
		conf += grammarBonus
	}
	return util.Clamp(conf, 0, 1)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
