// grammar/english.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package grammar

import (
	"strings"

	"github.com/comanda-voice/comanda/lexicon"
)

// English implements Corrector for English: contraction expansion, slang
// normalization, auxiliary-verb and article agreement, and compound joins.
type English struct {
	contractions *lexicon.WordMatcher
	slang        *lexicon.WordMatcher
	agreement    *lexicon.WordMatcher
	compounds    *lexicon.WordMatcher
}

var englishContractions = map[string]string{
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
	"we'd":      "we would",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"he'd":      "he would",
	"he'll":     "he will",
	"he's":      "he is",
	"she'd":     "she would",
	"she'll":    "she will",
	"she's":     "she is",
	"it's":      "it is",
	"that's":    "that is",
	"there's":   "there is",
	"what's":    "what is",
	"who's":     "who is",
	"let's":     "let us",
	"can't":     "cannot",
	"won't":     "will not",
	"don't":     "do not",
	"doesn't":   "does not",
	"didn't":    "did not",
	"isn't":     "is not",
	"aren't":    "are not",
	"wasn't":    "was not",
	"weren't":   "were not",
	"couldn't":  "could not",
	"shouldn't": "should not",
	"wouldn't":  "would not",
	"haven't":   "have not",
	"hasn't":    "has not",
	"hadn't":    "had not",
	"y'all":     "you all",
}

var englishSlang = map[string]string{
	"gimme":  "give me",
	"gonna":  "going to",
	"wanna":  "want to",
	"gotta":  "got to",
	"lemme":  "let me",
	"kinda":  "kind of",
	"sorta":  "sort of",
	"outta":  "out of",
	"dunno":  "do not know",
	"ain't":  "is not",
	"yeah":   "yes",
	"yep":    "yes",
	"yup":    "yes",
	"nah":    "no",
	"nope":   "no",
	"cuz":    "because",
	"coz":    "because",
	"ya":     "you",
	"u":      "you",
	"imma":   "i am going to",
	"whatcha": "what are you",
	"betcha":  "bet you",
}

// englishAgreement fixes common subject-verb disagreements heard in casual
// speech and produced by STT.
var englishAgreement = map[string]string{
	"i is":      "i am",
	"i has":     "i have",
	"i wants":   "i want",
	"he have":   "he has",
	"she have":  "she has",
	"we was":    "we were",
	"they was":  "they were",
	"you was":   "you were",
	"there is two": "there are two",
	"it don't":     "it does not",
	"he don't":     "he does not",
	"she don't":    "she does not",
}

// englishCompounds joins cooking-method and size constructions so the entity
// extractor sees a single token.
var englishCompounds = map[string]string{
	"well done":   "well-done",
	"medium rare": "medium-rare",
	"medium well": "medium-well",
	"deep fried":  "deep-fried",
	"stir fried":  "stir-fried",
	"extra large": "extra-large",
	"with out":    "without",
	"a lot of":    "lots of",
}

// englishSignals are words whose presence marks well-formed English for the
// classifier's grammar bonus: articles, modals, and auxiliaries.
var englishSignals = map[string]bool{
	"a": true, "an": true, "the": true,
	"would": true, "could": true, "should": true, "can": true, "will": true,
	"may": true, "might": true, "must": true, "shall": true,
	"is": true, "are": true, "was": true, "were": true, "am": true,
	"do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true,
	"please": true,
}

func NewEnglish() *English {
	return &English{
		contractions: lexicon.CompileWordMap(englishContractions),
		slang:        lexicon.CompileWordMap(englishSlang),
		agreement:    lexicon.CompileWordMap(englishAgreement),
		compounds:    lexicon.CompileWordMap(englishCompounds),
	}
}

func (e *English) Language() string { return "en" }

func (e *English) ExpandContractions(s string) (string, int) {
	return e.contractions.Replace(s)
}

func (e *English) CorrectSlang(s string) (string, int) {
	return e.slang.Replace(s)
}

func (e *English) CorrectGrammar(s string) (string, int) {
	s, n := e.agreement.Replace(s)
	s, m := fixIndefiniteArticles(s)
	return s, n + m
}

func (e *English) JoinCompounds(s string) (string, int) {
	return e.compounds.Replace(s)
}

func (e *English) WellFormed(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if englishSignals[strings.Trim(w, ".,!?;:")] {
			return true
		}
		if strings.Contains(w, "'") {
			return true
		}
	}
	return false
}

// fixIndefiniteArticles rewrites "a" before a vowel sound to "an" and vice
// versa. Words like "university" and "hour" are exceptions that a simple
// vowel test gets wrong, so they are listed explicitly.
func fixIndefiniteArticles(s string) (string, int) {
	words := strings.Fields(s)
	count := 0
	for i := 0; i+1 < len(words); i++ {
		w := strings.ToLower(words[i])
		if w != "a" && w != "an" {
			continue
		}
		next := strings.ToLower(strings.Trim(words[i+1], ".,!?;:"))
		if next == "" || (next[0] >= '0' && next[0] <= '9') {
			continue
		}
		want := "a"
		if startsWithVowelSound(next) {
			want = "an"
		}
		if w != want {
			words[i] = want
			count++
		}
	}
	if count == 0 {
		return s, 0
	}
	return strings.Join(words, " "), count
}

var vowelSoundExceptions = map[string]bool{
	// Consonant letter, vowel sound
	"hour": true, "honest": true, "heir": true, "herb": true,
	// Vowel letter, consonant sound
	"university": false, "uniform": false, "united": false, "one": false,
	"unique": false, "used": false, "user": false, "european": false,
}

func startsWithVowelSound(w string) bool {
	if v, ok := vowelSoundExceptions[w]; ok {
		return v
	}
	switch w[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
