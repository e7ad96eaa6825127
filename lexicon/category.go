// lexicon/category.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package lexicon

import "strings"

// Food categories, derived from the canonical name with substring rules.
const (
	CategoryBeverage   = "beverage"
	CategoryDessert    = "dessert"
	CategoryAppetizer  = "appetizer"
	CategoryMeat       = "meat"
	CategorySeafood    = "seafood"
	CategoryMainCourse = "main_course"
	CategorySide       = "side"
	CategoryOther      = "other"
)

// categoryRules is checked in order; the first rule whose fragment appears in
// the canonical name wins. More specific fragments come first: "steak" must
// be checked before "tea", "tartare" before "tart".
var categoryRules = []struct {
	fragment string
	category string
}{
	// Meat
	{"steak", CategoryMeat},
	{"tartare", CategoryMeat},
	{"beef", CategoryMeat},
	{"boeuf", CategoryMeat},
	{"chicken", CategoryMeat},
	{"poulet", CategoryMeat},
	{"lamb", CategoryMeat},
	{"agneau", CategoryMeat},
	{"pork", CategoryMeat},
	{"bacon", CategoryMeat},
	{"duck", CategoryMeat},
	{"canard", CategoryMeat},

	// Seafood
	{"fish", CategorySeafood},
	{"poisson", CategorySeafood},
	{"salmon", CategorySeafood},
	{"saumon", CategorySeafood},
	{"shrimp", CategorySeafood},
	{"crevette", CategorySeafood},
	{"lobster", CategorySeafood},
	{"homard", CategorySeafood},
	{"oyster", CategorySeafood},
	{"huitre", CategorySeafood},
	{"moules", CategorySeafood},

	// Mains
	{"burger", CategoryMainCourse},
	{"pizza", CategoryMainCourse},
	{"pasta", CategoryMainCourse},
	{"sandwich", CategoryMainCourse},
	{"taco", CategoryMainCourse},
	{"burrito", CategoryMainCourse},
	{"quiche", CategoryMainCourse},
	{"omelette", CategoryMainCourse},
	{"coq au vin", CategoryMainCourse},
	{"ratatouille", CategoryMainCourse},
	{"hot dog", CategoryMainCourse},

	// Sides
	{"fries", CategorySide},
	{"frites", CategorySide},
	{"rice", CategorySide},
	{"riz", CategorySide},
	{"bread", CategorySide},
	{"pain", CategorySide},
	{"chips", CategorySide},
	{"legumes", CategorySide},
	{"vegetables", CategorySide},
	{"haricots", CategorySide},

	// Desserts
	{"gateau", CategoryDessert},
	{"gâteau", CategoryDessert},
	{"cake", CategoryDessert},
	{"ice cream", CategoryDessert},
	{"tart", CategoryDessert},
	{"pie", CategoryDessert},
	{"mousse", CategoryDessert},
	{"creme brulee", CategoryDessert},
	{"pudding", CategoryDessert},
	{"crepe", CategoryDessert},
	{"eclair", CategoryDessert},
	{"macaron", CategoryDessert},

	// Appetizers
	{"salad", CategoryAppetizer},
	{"salade", CategoryAppetizer},
	{"soup", CategoryAppetizer},
	{"soupe", CategoryAppetizer},
	{"escargot", CategoryAppetizer},
	{"pate", CategoryAppetizer},
	{"pâté", CategoryAppetizer},
	{"foie gras", CategoryAppetizer},

	// Beverages
	{"coffee", CategoryBeverage},
	{"espresso", CategoryBeverage},
	{"cafe", CategoryBeverage},
	{"tea", CategoryBeverage},
	{"thé", CategoryBeverage},
	{"juice", CategoryBeverage},
	{"jus", CategoryBeverage},
	{"soda", CategoryBeverage},
	{"soft drink", CategoryBeverage},
	{"water", CategoryBeverage},
	{"eau", CategoryBeverage},
	{"milk", CategoryBeverage},
	{"lait", CategoryBeverage},
	{"wine", CategoryBeverage},
	{"vin", CategoryBeverage},
	{"beer", CategoryBeverage},
	{"biere", CategoryBeverage},
	{"bière", CategoryBeverage},
	{"smoothie", CategoryBeverage},
}

// CategoryOf derives a food category from a canonical name.
func CategoryOf(canonical string) string {
	canonical = strings.ToLower(canonical)
	for _, r := range categoryRules {
		if strings.Contains(canonical, r.fragment) {
			return r.category
		}
	}
	return CategoryOther
}
