// grammar/french.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package grammar

import (
	"strings"

	"github.com/comanda-voice/comanda/lexicon"
)

// French implements Corrector for French: informal elision expansion,
// liaison artifacts, article and partitive agreement, and common conjugation
// fixes.
type French struct {
	elisions    *lexicon.WordMatcher
	liaison     *lexicon.WordMatcher
	agreement   *lexicon.WordMatcher
	conjugation *lexicon.WordMatcher
	compounds   *lexicon.WordMatcher
}

// frenchElisions expands informal elided forms back to their full canonical
// forms. Standard written elisions ("j'aimerais", "l'eau") are left alone;
// only spoken shortcuts that STT transcribes literally are expanded.
var frenchElisions = map[string]string{
	"j'veux":    "je veux",
	"j'vais":    "je vais",
	"j'peux":    "je peux",
	"j'prends":  "je prends",
	"j'sais":    "je sais",
	"j'suis":    "je suis",
	"t'as":      "tu as",
	"t'es":      "tu es",
	"t'veux":    "tu veux",
	"chuis":     "je suis",
	"chais":     "je sais",
	"chépa":     "je ne sais pas",
	"chaipas":   "je ne sais pas",
	"y'a":       "il y a",
	"y a":       "il y a",
}

// frenchLiaison covers informal spoken artifacts and dropped negations that
// show up in STT transcripts.
var frenchLiaison = map[string]string{
	"ouais":        "oui",
	"ouaip":        "oui",
	"mouais":       "oui",
	"nan":          "non",
	"nope":         "non",
	"ben":          "eh bien",
	"bah":          "eh bien",
	"chez oui":     "je veux bien", // STT mishearing of "ch'veux bien"
	"z'avez":       "vous avez",
	"z'auriez":     "vous auriez",
	"n'importe quoi comme": "n'importe quel",
}

// frenchAgreement fixes article and partitive agreement. The contracted
// forms are mandatory in French: "de le" must be "du", "à les" must be
// "aux".
var frenchAgreement = map[string]string{
	"de le":  "du",
	"de les": "des",
	"à le":   "au",
	"à les":  "aux",
	"de des": "des",
	"un eau": "une eau",
	"un bière":    "une bière",
	"une steak":   "un steak",
	"une café":    "un café",
	"un salade":   "une salade",
	"ce eau":      "cette eau",
	"le eau":      "l'eau",
	"la eau":      "l'eau",
	"le addition": "l'addition",
	"la addition": "l'addition",
}

// frenchConjugation fixes common conjugation errors in transcripts.
var frenchConjugation = map[string]string{
	"je veut":     "je veux",
	"je peut":     "je peux",
	"je prend":    "je prends",
	"je voudrai":  "je voudrais",
	"j'aimerai":   "j'aimerais",
	"je souhaiterai": "je souhaiterais",
	"vous voulez-vous": "voulez-vous",
	"je suis vouloir":  "je veux",
	"nous veut":        "nous voulons",
	"ils veut":         "ils veulent",
}

// frenchCompounds joins cooking-method and size constructions.
var frenchCompounds = map[string]string{
	"bien cuit":    "bien-cuit",
	"à point":      "à-point",
	"très cuit":    "bien-cuit",
	"au four":      "au-four",
	"à la vapeur":  "à-la-vapeur",
	"avec de la":   "avec",
	"avec du":      "avec",
	"avec des":     "avec",
}

// frenchSignals mark well-formed French: articles, partitives, auxiliaries,
// and polite forms.
var frenchSignals = map[string]bool{
	"le": true, "la": true, "les": true, "l'": true,
	"un": true, "une": true, "des": true, "du": true,
	"est": true, "sont": true, "suis": true, "êtes": true,
	"ai": true, "as": true, "avons": true, "avez": true,
	"veux": true, "voudrais": true, "aimerais": true, "prends": true,
	"merci": true, "bonjour": true,
}

func NewFrench() *French {
	return &French{
		elisions:    lexicon.CompileWordMap(frenchElisions),
		liaison:     lexicon.CompileWordMap(frenchLiaison),
		agreement:   lexicon.CompileWordMap(frenchAgreement),
		conjugation: lexicon.CompileWordMap(frenchConjugation),
		compounds:   lexicon.CompileWordMap(frenchCompounds),
	}
}

func (f *French) Language() string { return "fr" }

func (f *French) ExpandContractions(s string) (string, int) {
	return f.elisions.Replace(s)
}

func (f *French) CorrectSlang(s string) (string, int) {
	return f.liaison.Replace(s)
}

func (f *French) CorrectGrammar(s string) (string, int) {
	s, n := f.agreement.Replace(s)
	s, m := f.conjugation.Replace(s)
	return s, n + m
}

func (f *French) JoinCompounds(s string) (string, int) {
	return f.compounds.Replace(s)
}

func (f *French) WellFormed(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,!?;:")
		if frenchSignals[w] {
			return true
		}
		// Elided articles and pronouns ("l'eau", "j'aimerais") count too.
		if i := strings.IndexByte(w, '\''); i == 1 || i == 2 {
			return true
		}
	}
	return false
}
