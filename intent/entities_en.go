// intent/entities_en.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

// Closed English vocabularies for non-food entity categories.

var modifiersEN = map[string]string{
	"without":     "without",
	"no":          "without",
	"hold the":    "without",
	"extra":       "extra",
	"double":      "extra",
	"more":        "extra",
	"less":        "less",
	"light on":    "less",
	"easy on":     "less",
	"with":        "with",
	"on the side": "side",
}

var sizesEN = map[string]string{
	"small":       "small",
	"medium":      "medium",
	"large":       "large",
	"extra-large": "extra-large",
	"regular":     "regular",
	"kids":        "small",
	"kid's":       "small",
}

// "medium" by itself is a size; "medium-rare"/"medium-well" are cooking
// methods, joined into single tokens by the grammar compound stage.
var methodsEN = []string{
	"rare",
	"medium-rare",
	"medium-well",
	"well-done",
	"grilled",
	"fried",
	"deep-fried",
	"stir-fried",
	"baked",
	"roasted",
	"steamed",
	"boiled",
	"smoked",
	"raw",
	"toasted",
}
