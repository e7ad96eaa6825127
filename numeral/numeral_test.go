// numeral/numeral_test.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package numeral

import (
	"testing"

	"github.com/comanda-voice/comanda/lexicon"
)

func TestConvertEnglish(t *testing.T) {
	c := ForVariant(lexicon.EnUS)

	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{"single digit", "i want two burgers", "i want 2 burgers", 1},
		{"teens", "fifteen minutes", "15 minutes", 1},
		{"tens", "seventy percent", "70 percent", 1},
		{"compound hyphen", "twenty-one guests", "21 guests", 1},
		{"compound space", "twenty one guests", "21 guests", 1},
		{"hundred scale", "two hundred grams", "200 grams", 1},
		{"hundred with tens", "two hundred fifty grams", "250 grams", 1},
		{"thousand", "three thousand", "3000", 1},
		{"article before quantity noun", "a hundred napkins", "100 napkins", 1},
		{"a dozen", "a dozen eggs", "12 eggs", 1},
		{"article left alone", "a burger and an apple", "a burger and an apple", 0},
		{"digits pass through", "table 12 please", "table 12 please", 0},
		{"two numbers", "two burgers and three sodas", "2 burgers and 3 sodas", 2},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := c.Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if count != tt.count {
				t.Errorf("Convert(%q) count = %d, want %d", tt.input, count, tt.count)
			}
		})
	}
}

func TestConvertFrench(t *testing.T) {
	c := ForVariant(lexicon.FrFR)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "deux croissants", "2 croissants"},
		{"teens hyphenated", "dix-sept euros", "17 euros"},
		{"vingt et un", "vingt et un couverts", "21 couverts"},
		{"vingt-et-un", "vingt-et-un couverts", "21 couverts"},
		{"soixante-dix", "soixante-dix grammes", "70 grammes"},
		{"soixante et onze", "soixante et onze", "71"},
		{"quatre-vingts", "quatre-vingts couverts", "80 couverts"},
		{"quatre-vingt-dix", "quatre-vingt-dix", "90"},
		{"quatre-vingt-dix-sept", "quatre-vingt-dix-sept", "97"},
		{"deux cents", "deux cents grammes", "200 grammes"},
		{"article un left alone", "un café et une bière", "un café et une bière"},
		{"une douzaine", "une douzaine d'huîtres", "12 d'huîtres"},
		{"compound word kept", "un croque-monsieur", "un croque-monsieur"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := c.Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSwissFrenchTens(t *testing.T) {
	ch := ForVariant(lexicon.FrCH)
	fr := ForVariant(lexicon.FrFR)

	tests := []struct {
		input string
		want  string
	}{
		{"septante grammes", "70 grammes"},
		{"huitante francs", "80 francs"},
		{"nonante centimes", "90 centimes"},
		{"septante-cinq", "75"},
		{"nonante-neuf", "99"},
	}
	for _, tt := range tests {
		got, _ := ch.Convert(tt.input)
		if got != tt.want {
			t.Errorf("fr-CH Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	// Metropolitan French does not use the Swiss tens; they pass through.
	if got, count := fr.Convert("septante grammes"); got != "septante grammes" || count != 0 {
		t.Errorf("fr-FR Convert(septante grammes) = %q (%d), want unchanged", got, count)
	}
}

func TestConvertIdempotent(t *testing.T) {
	c := ForVariant(lexicon.EnUS)
	once, _ := c.Convert("twenty-one and a hundred")
	twice, _ := c.Convert(once)
	if once != twice {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}
