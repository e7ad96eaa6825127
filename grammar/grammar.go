// grammar/grammar.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package grammar provides the language-specific correction stage of the
// normalization pipeline. Each language implements Corrector; the pipeline is
// otherwise language-agnostic. Adding a language means implementing Corrector
// and supplying lexicon tables, nothing else.
package grammar

// Corrector is the language-specific grammar capability. All methods return
// the corrected text and the number of corrections applied; text without
// applicable corrections passes through unchanged.
type Corrector interface {
	// Language returns the bare language code ("en", "fr").
	Language() string

	// ExpandContractions rewrites contracted or elided forms to their full
	// canonical forms ("i'd" -> "i would", "t'as" -> "tu as"). Invoked
	// during base text normalization.
	ExpandContractions(s string) (string, int)

	// CorrectSlang rewrites informal speech. For English this is slang
	// ("gimme" -> "give me"); for French it covers liaison and informal
	// spoken artifacts ("y'a" -> "il y a").
	CorrectSlang(s string) (string, int)

	// CorrectGrammar applies agreement, article, and conjugation fixes.
	CorrectGrammar(s string) (string, int)

	// JoinCompounds normalizes compound constructions: cooking-method +
	// item and size + item joins ("well done" -> "well-done").
	JoinCompounds(s string) (string, int)

	// WellFormed reports whether the text shows signs of well-formed
	// grammar (articles, auxiliary or modal verbs); used by the intent
	// classifier's confidence bonus.
	WellFormed(s string) bool
}

// ForLanguage returns the Corrector for a language code. Unknown languages
// get the English corrector; the engine validates variants before this point.
func ForLanguage(lang string) Corrector {
	if lang == "fr" {
		return NewFrench()
	}
	return NewEnglish()
}
