// intent/classify_test.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

import (
	"testing"

	"github.com/comanda-voice/comanda/grammar"
	"github.com/comanda-voice/comanda/lexicon"
)

func newTestClassifier(v lexicon.Variant, strict bool) *Classifier {
	return NewClassifier(v, grammar.ForLanguage(v.Language()), strict)
}

func TestClassifyEnglish(t *testing.T) {
	c := newTestClassifier(lexicon.EnUS, false)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"order", "i would like a cheeseburger", Order},
		{"order can i get", "can i get a large pizza", Order},
		{"add", "add a soda to that", Add},
		{"remove", "remove the pickles", Remove},
		{"change", "make that a large", Change},
		{"pay", "can we get the check", Pay},
		{"help", "what do you recommend", Help},
		{"repeat", "could you say that again", Repeat},
		{"cancel", "never mind", Cancel},
		{"unknown", "blue sky walrus", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Classify(tt.input, false)
			if r.Intent != tt.want {
				t.Errorf("Classify(%q) = %s (pattern %q), want %s",
					tt.input, r.Intent, r.MatchedPattern, tt.want)
			}
			if r.Confidence < 0 || r.Confidence > 1 {
				t.Errorf("Classify(%q) confidence %f out of range", tt.input, r.Confidence)
			}
			if tt.want == Unknown && r.Confidence != 0 {
				t.Errorf("Classify(%q) unknown with confidence %f", tt.input, r.Confidence)
			}
		})
	}
}

func TestClassifyFrench(t *testing.T) {
	c := newTestClassifier(lexicon.FrFR, false)

	tests := []struct {
		input string
		want  string
	}{
		{"je voudrais un steak frites", Order},
		{"ajoutez une bière", Add},
		{"enlevez les oignons", Remove},
		{"l'addition s'il vous plaît", Pay},
		{"que recommandez-vous", Help},
		{"annulez tout", Cancel},
		{"le ciel est bleu", Unknown},
	}
	for _, tt := range tests {
		if r := c.Classify(tt.input, false); r.Intent != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.input, r.Intent, tt.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := newTestClassifier(lexicon.EnUS, false)

	// "one more time" contains the add trigger "one more", which is declared
	// before repeat's phrases; the tie-break is declaration order.
	r := c.Classify("one more time", false)
	if r.Intent != Add {
		t.Errorf("got %s (pattern %q), want %s", r.Intent, r.MatchedPattern, Add)
	}

	// "i want" appears under order before any later intent can see it.
	r = c.Classify("i want to cancel", false)
	if r.Intent != Order {
		t.Errorf("got %s, want %s", r.Intent, Order)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier(lexicon.EnUS, false)
	first := c.Classify("can i get a burger and fries", true)
	for i := 0; i < 50; i++ {
		r := c.Classify("can i get a burger and fries", true)
		if r != first {
			t.Fatalf("iteration %d: %+v != %+v", i, r, first)
		}
	}
}

func TestClassifyConfidenceBonuses(t *testing.T) {
	c := newTestClassifier(lexicon.EnUS, false)

	// Every phrase word must be present for a match, so the base fraction is
	// 1.0 and a clear contiguous order saturates the clamp.
	full := c.Classify("i would like a burger", true)
	if full.Confidence != 1.0 {
		t.Errorf("full match confidence %f, want 1.0", full.Confidence)
	}

	// Bonuses never lower a score.
	base := c.Classify("i would like a burger", false)
	if ctx := c.Classify("i would like a burger", true); ctx.Confidence < base.Confidence {
		t.Errorf("context bonus lowered confidence: %f < %f", ctx.Confidence, base.Confidence)
	}
	contiguous := c.Classify("i would like fries", false)
	scattered := c.Classify("like i fries would", false)
	if contiguous.Confidence < scattered.Confidence {
		t.Errorf("exact-match bonus missing: %f < %f",
			contiguous.Confidence, scattered.Confidence)
	}
}

func TestClassifyStrictMode(t *testing.T) {
	loose := newTestClassifier(lexicon.EnUS, false)
	strict := newTestClassifier(lexicon.EnUS, true)

	// Word-subset matching accepts reordered words; strict mode requires the
	// contiguous phrase.
	if r := loose.Classify("like i would fries", false); r.Intent != Order {
		t.Errorf("loose: got %s, want %s", r.Intent, Order)
	}
	if r := strict.Classify("like i would fries", false); r.Intent != Unknown {
		t.Errorf("strict: got %s, want %s", r.Intent, Unknown)
	}
	if r := strict.Classify("i would like fries", false); r.Intent != Order {
		t.Errorf("strict contiguous: got %s, want %s", r.Intent, Order)
	}
}

func TestTaxonomyIntentsCovered(t *testing.T) {
	want := []string{Order, Add, Remove, Change, Pay, Help, Repeat, Cancel}
	for _, v := range lexicon.Supported() {
		patterns := TaxonomyFor(v)
		if len(patterns) != len(want) {
			t.Errorf("%s: %d patterns, want %d", v, len(patterns), len(want))
			continue
		}
		for i, p := range patterns {
			if p.Intent != want[i] {
				t.Errorf("%s: pattern %d is %s, want %s", v, i, p.Intent, want[i])
			}
			if len(p.Phrases) == 0 {
				t.Errorf("%s: intent %s has no phrases", v, p.Intent)
			}
		}
	}
}
