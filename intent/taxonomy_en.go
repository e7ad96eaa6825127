// intent/taxonomy_en.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

// taxonomyEN is the English trigger-phrase taxonomy. Order matters:
// classification returns the first intent with a matching phrase. "one more
// time" (repeat) is shadowed by "one more" (add); that imprecision is
// accepted to keep the tie-break deterministic.
func taxonomyEN() []Pattern {
	return []Pattern{
		{Order, []string{
			"i would like",
			"can i get",
			"can i have",
			"could i get",
			"could i have",
			"may i have",
			"i want to order",
			"i want",
			"give me",
			"i will take",
			"i will have",
			"let me get",
			"order",
		}},
		{Add, []string{
			"add",
			"as well",
			"one more",
			"another",
			"also",
			"and a",
			"put in",
			"throw in",
		}},
		{Remove, []string{
			"remove",
			"take off",
			"take out",
			"delete",
			"no more",
			"get rid of",
			"scratch the",
		}},
		{Change, []string{
			"change",
			"instead of",
			"swap",
			"switch",
			"replace",
			"make that",
			"make it",
		}},
		{Pay, []string{
			"pay",
			"the bill",
			"the check",
			"check please",
			"checkout",
			"how much",
			"total please",
			"settle up",
		}},
		{Help, []string{
			"help",
			"what can i",
			"what do you have",
			"what do you recommend",
			"menu please",
			"the menu",
			"options",
			"how do i",
		}},
		{Repeat, []string{
			"repeat",
			"say again",
			"say that again",
			"what did you say",
			"pardon",
			"come again",
		}},
		{Cancel, []string{
			"cancel",
			"never mind",
			"forget it",
			"forget that",
			"start over",
			"stop",
		}},
	}
}
