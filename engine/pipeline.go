// engine/pipeline.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/comanda-voice/comanda/lexicon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeText performs base normalization: lowercasing, whitespace
// collapsing, abbreviation expansion, contraction/elision expansion, and
// terminal punctuation stripping.
func (e *Engine) NormalizeText(raw string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.normalizeLocked(raw)
}

// ProcessTranscript runs the full normalization pipeline over a raw STT
// transcript and returns the canonical text. Empty input yields "".
func (e *Engine) ProcessTranscript(raw string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.TotalProcessed++
	return e.processLocked(raw)
}

func (e *Engine) normalizeLocked(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = collapseWhitespace(s)

	var n int
	s, n = e.matchers.Abbrev.Replace(s)
	e.stats.ReplacementsMade += n

	if e.opts.HandleContractions {
		s, n = e.grammar.ExpandContractions(s)
		e.stats.GrammarCorrections += n
		e.stats.ReplacementsMade += n
	}

	s = strings.TrimRight(s, ".!?;:,")
	return strings.TrimSpace(s)
}

// processLocked runs the ordered normalization stages. It reads the
// lexicon and boost stores but never mutates table state; statistics are the
// only side effect.
func (e *Engine) processLocked(raw string) string {
	s := e.normalizeLocked(raw)
	if s == "" {
		return ""
	}
	var n int

	if e.opts.EnableRegionalDialects {
		s, n = e.matchers.Dialect.Replace(s)
		e.stats.DialectWordsFound += n
		e.stats.ReplacementsMade += n
	}

	switch e.grammar.Language() {
	case "en":
		if e.opts.HandleSlang {
			s, n = e.grammar.CorrectSlang(s)
			e.stats.SlangOrLiaisonCorrections += n
			e.stats.ReplacementsMade += n
		}
	case "fr":
		if e.opts.HandleLiaison {
			s, n = e.grammar.CorrectSlang(s)
			e.stats.SlangOrLiaisonCorrections += n
			e.stats.ReplacementsMade += n
		}
	}

	// Food terms only under an active food context: applying them
	// elsewhere would corrupt unrelated words that happen to match.
	if e.opts.ContextAware && e.context.Food() {
		s, n = e.matchers.Food.Replace(s)
		e.stats.ContextMatches += n
		e.stats.ReplacementsMade += n
	}

	s, n = e.matchers.Common.Replace(s)
	e.stats.ReplacementsMade += n

	s, n = e.matchers.Phonetic.Replace(s)
	e.stats.ReplacementsMade += n

	if e.opts.HandleGrammar {
		s, n = e.grammar.CorrectGrammar(s)
		e.stats.GrammarCorrections += n
		e.stats.ReplacementsMade += n
	}

	s, n = e.grammar.JoinCompounds(s)
	e.stats.ReplacementsMade += n

	s, n = e.boost.Apply(s)
	e.stats.ConfidenceBoosts += n
	e.stats.ReplacementsMade += n

	s, n = e.numerals.Convert(s)
	e.stats.ReplacementsMade += n

	return e.cleanup(s)
}

// cleanup collapses whitespace, restores proper-noun capitalization, and
// capitalizes the first letter.
func (e *Engine) cleanup(s string) string {
	s = collapseWhitespace(s)
	s = e.caser.apply(s)
	return capitalizeFirst(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// properCaser re-capitalizes known proper nouns (brands, wine and cheese
// regions) in cleaned-up text, using the variant's language rules.
type properCaser struct {
	matcher *lexicon.WordMatcher
}

func newProperCaser(v lexicon.Variant, nouns []string) properCaser {
	titler := cases.Title(language.Make(string(v)), cases.NoLower)
	m := make(map[string]string, len(nouns))
	for _, noun := range nouns {
		m[noun] = titler.String(noun)
	}
	return properCaser{matcher: lexicon.CompileWordMap(m)}
}

func (p properCaser) apply(s string) string {
	s, _ = p.matcher.Replace(s)
	return s
}
