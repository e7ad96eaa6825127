// intent/entity_test.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

import (
	"testing"

	"github.com/comanda-voice/comanda/lexicon"
)

func newTestExtractor(t *testing.T, v lexicon.Variant) *Extractor {
	t.Helper()
	tables, err := lexicon.LoadTables(v)
	if err != nil {
		t.Fatalf("LoadTables(%s): %v", v, err)
	}
	return NewExtractor(v, tables)
}

func TestExtractFoodsEnglish(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	bag := e.Extract("i would like a cheeseburger with french fries")
	if len(bag.Foods) != 2 {
		t.Fatalf("got %d foods %+v, want 2", len(bag.Foods), bag.Foods)
	}
	if bag.Foods[0].Canonical != "cheeseburger" || bag.Foods[0].Category != lexicon.CategoryMainCourse {
		t.Errorf("food 0 = %+v", bag.Foods[0])
	}
	if bag.Foods[1].Canonical != "french fries" || bag.Foods[1].Category != lexicon.CategorySide {
		t.Errorf("food 1 = %+v", bag.Foods[1])
	}
	if bag.Foods[0].Position >= bag.Foods[1].Position {
		t.Errorf("foods not sorted by position: %+v", bag.Foods)
	}
	if len(bag.Modifiers) != 1 || bag.Modifiers[0].Type != "with" {
		t.Errorf("modifiers = %+v, want one 'with'", bag.Modifiers)
	}
}

func TestExtractLongestFoodWins(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	// "french fries" claims its span; the shorter "fries" entry must not
	// produce a second food over the same characters.
	bag := e.Extract("french fries please")
	if len(bag.Foods) != 1 {
		t.Fatalf("got %d foods %+v, want 1", len(bag.Foods), bag.Foods)
	}
	if bag.Foods[0].Name != "french fries" {
		t.Errorf("food = %+v", bag.Foods[0])
	}

	// An unclaimed occurrence elsewhere still counts.
	bag = e.Extract("fries and french fries")
	if len(bag.Foods) != 2 {
		t.Errorf("got %d foods %+v, want 2", len(bag.Foods), bag.Foods)
	}
}

func TestExtractSynonymCanonical(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	bag := e.Extract("a burger and a shake")
	if len(bag.Foods) != 2 {
		t.Fatalf("got %d foods %+v, want 2", len(bag.Foods), bag.Foods)
	}
	if bag.Foods[0].Name != "burger" || bag.Foods[0].Canonical != "hamburger" {
		t.Errorf("food 0 = %+v", bag.Foods[0])
	}
	if bag.Foods[1].Name != "shake" || bag.Foods[1].Canonical != "milkshake" {
		t.Errorf("food 1 = %+v", bag.Foods[1])
	}
}

func TestExtractNumbers(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	bag := e.Extract("2 hamburger and 1 soda for table 12")
	if len(bag.Numbers) != 3 {
		t.Fatalf("numbers = %+v, want 3", bag.Numbers)
	}
	values := []int{bag.Numbers[0].Value, bag.Numbers[1].Value, bag.Numbers[2].Value}
	if values[0] != 2 || values[1] != 1 || values[2] != 12 {
		t.Errorf("values = %v", values)
	}
}

func TestExtractSizesAndMethods(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	bag := e.Extract("a large medium-rare steak without onions")
	if len(bag.Sizes) != 1 || bag.Sizes[0].Size != "large" {
		t.Errorf("sizes = %+v", bag.Sizes)
	}
	if len(bag.CookingMethods) != 1 || bag.CookingMethods[0].Method != "medium-rare" {
		t.Errorf("methods = %+v", bag.CookingMethods)
	}
	found := false
	for _, m := range bag.Modifiers {
		if m.Type == "without" {
			found = true
		}
	}
	if !found {
		t.Errorf("modifiers = %+v, want a 'without'", bag.Modifiers)
	}
}

func TestExtractHyphenNotBoundary(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)

	// "rare" and "medium" must not match inside "medium-rare".
	bag := e.Extract("medium-rare steak")
	if len(bag.Sizes) != 0 {
		t.Errorf("sizes = %+v, want none", bag.Sizes)
	}
	if len(bag.CookingMethods) != 1 || bag.CookingMethods[0].Method != "medium-rare" {
		t.Errorf("methods = %+v", bag.CookingMethods)
	}
}

func TestExtractFrench(t *testing.T) {
	e := newTestExtractor(t, lexicon.FrFR)

	bag := e.Extract("un steak bien-cuit avec pommes frites sans oignons")
	foods := make(map[string]string)
	for _, f := range bag.Foods {
		foods[f.Name] = f.Canonical
	}
	if foods["steak"] != "steak" || foods["pommes frites"] != "pommes frites" {
		t.Errorf("foods = %+v", bag.Foods)
	}
	if len(bag.CookingMethods) != 1 || bag.CookingMethods[0].Method != "bien-cuit" {
		t.Errorf("methods = %+v", bag.CookingMethods)
	}
	types := make(map[string]bool)
	for _, m := range bag.Modifiers {
		types[m.Type] = true
	}
	if !types["with"] || !types["without"] {
		t.Errorf("modifiers = %+v, want with and without", bag.Modifiers)
	}
}

func TestExtractEmpty(t *testing.T) {
	e := newTestExtractor(t, lexicon.EnUS)
	bag := e.Extract("   ")
	if len(bag.Foods)+len(bag.Numbers)+len(bag.Modifiers)+len(bag.Sizes)+len(bag.CookingMethods) != 0 {
		t.Errorf("expected empty bag, got %+v", bag)
	}
}
