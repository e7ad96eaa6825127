// intent/entities_fr.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

// Closed French vocabularies for non-food entity categories.

var modifiersFR = map[string]string{
	"sans":           "without",
	"avec":           "with",
	"supplémentaire": "extra",
	"supplément":     "extra",
	"double":         "extra",
	"extra":          "extra",
	"peu de":         "less",
	"moins de":       "less",
	"à part":         "side",
	"à côté":         "side",
}

var sizesFR = map[string]string{
	"petit":   "small",
	"petite":  "small",
	"moyen":   "medium",
	"moyenne": "medium",
	"grand":   "large",
	"grande":  "large",
	"demi":    "small",
}

// "à-point" and the other hyphenated forms are produced by the French
// compound stage.
var methodsFR = []string{
	"saignant",
	"saignante",
	"à-point",
	"bien-cuit",
	"grillé",
	"grillée",
	"frit",
	"frite",
	"rôti",
	"rôtie",
	"au-four",
	"à-la-vapeur",
	"poché",
	"fumé",
	"cru",
}
