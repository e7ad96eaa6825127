// lexicon/lexicon_test.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package lexicon

import (
	"testing"
)

func TestLoadTables(t *testing.T) {
	for _, v := range Supported() {
		tables, err := LoadTables(v)
		if err != nil {
			t.Errorf("LoadTables(%s): %v", v, err)
			continue
		}
		if tables.Variant != v {
			t.Errorf("LoadTables(%s): got variant %s", v, tables.Variant)
		}
		if len(tables.Food) == 0 || len(tables.Common) == 0 || len(tables.Phonetic) == 0 {
			t.Errorf("LoadTables(%s): empty tables", v)
		}
	}

	if _, err := LoadTables("de-DE"); err == nil {
		t.Error("LoadTables(de-DE): expected error for unsupported variant")
	}
	if Variant("de-DE").Valid() {
		t.Error("de-DE should not be valid")
	}
}

func TestVariantLanguage(t *testing.T) {
	tests := []struct {
		variant Variant
		lang    string
	}{
		{EnUS, "en"},
		{EnGB, "en"},
		{FrFR, "fr"},
		{FrCH, "fr"},
	}
	for _, tt := range tests {
		if got := tt.variant.Language(); got != tt.lang {
			t.Errorf("%s.Language() = %q, want %q", tt.variant, got, tt.lang)
		}
	}
}

func TestWordMatcher(t *testing.T) {
	m := CompileWordMap(map[string]string{
		"chips":  "french fries",
		"fries":  "french fries",
		"cuppa":  "cup of tea",
		"brekky": "breakfast",
	})

	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{"single word", "i want chips", "i want french fries", 1},
		{"case insensitive", "I Want CHIPS", "I Want french fries", 1},
		{"whole word only", "microchips are not food", "microchips are not food", 0},
		{"punctuation", "chips, please", "french fries please", 1},
		{"canonical form untouched", "i want french fries", "i want french fries", 0},
		{"two replacements", "chips and a cuppa", "french fries and a cup of tea", 2},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := m.Replace(tt.input)
			if got != tt.want {
				t.Errorf("Replace(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if count != tt.count {
				t.Errorf("Replace(%q) count = %d, want %d", tt.input, count, tt.count)
			}
		})
	}
}

func TestWordMatcherLongestFirst(t *testing.T) {
	m := CompileWordMap(map[string]string{
		"fish":           "fish",
		"fish and chips": "fish and chips",
		"chips":          "french fries",
	})
	got, count := m.Replace("fish and chips please")
	if got != "fish and chips please" {
		t.Errorf("got %q, want multi-word match preserved", got)
	}
	if count != 0 {
		t.Errorf("identity match counted as replacement: %d", count)
	}
}

func TestSubstringMatcher(t *testing.T) {
	m := CompileSubstringMap(map[string]string{
		"expresso":  "espresso",
		"cappucino": "cappuccino",
	})

	got, count := m.Replace("one expresso and one cappucino")
	if got != "one espresso and one cappuccino" {
		t.Errorf("got %q", got)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Substring-level: the error can appear inside a token.
	got, count = m.Replace("expressos")
	if got != "espressos" || count != 1 {
		t.Errorf("got %q count %d", got, count)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		canonical string
		want      string
	}{
		{"cheeseburger", CategoryMainCourse},
		{"french fries", CategorySide},
		{"steak", CategoryMeat},
		{"steak tartare", CategoryMeat},
		{"grilled salmon", CategorySeafood},
		{"chocolate cake", CategoryDessert},
		{"caesar salad", CategoryAppetizer},
		{"green tea", CategoryBeverage},
		{"coffee", CategoryBeverage},
		{"vin rouge", CategoryBeverage},
		{"gâteau au chocolat", CategoryDessert},
		{"mystery item", CategoryOther},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.canonical); got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.canonical, got, tt.want)
		}
	}
}

func TestStoreCaching(t *testing.T) {
	s := NewStore()
	t1, m1, err := s.Get(EnUS)
	if err != nil {
		t.Fatalf("Get(en-US): %v", err)
	}
	t2, m2, err := s.Get(EnUS)
	if err != nil {
		t.Fatalf("Get(en-US) again: %v", err)
	}
	if t1 != t2 || m1 != m2 {
		t.Error("expected cached tables and matchers on second Get")
	}
	if _, _, err := s.Get("xx-XX"); err == nil {
		t.Error("Get(xx-XX): expected error")
	}
}
