// intent/taxonomy_fr.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package intent

// taxonomyFR is the French trigger-phrase taxonomy. Phrases are written in
// the canonical forms the pipeline produces (contractions expanded, articles
// agreed).
func taxonomyFR() []Pattern {
	return []Pattern{
		{Order, []string{
			"je voudrais",
			"j'aimerais",
			"je veux",
			"je vais prendre",
			"je prends",
			"je prendrai",
			"donnez-moi",
			"donnez moi",
			"apportez-moi",
			"pour moi",
			"commander",
		}},
		{Add, []string{
			"ajouter",
			"ajoutez",
			"aussi",
			"également",
			"encore un",
			"encore une",
			"un autre",
			"une autre",
			"en plus",
		}},
		{Remove, []string{
			"enlever",
			"enlevez",
			"retirer",
			"retirez",
			"supprimer",
			"sans le",
			"sans la",
			"plus de", // "plus de frites" - no more fries
		}},
		{Change, []string{
			"changer",
			"changez",
			"remplacer",
			"remplacez",
			"échanger",
			"à la place",
			"plutôt",
		}},
		{Pay, []string{
			"payer",
			"l'addition",
			"la note",
			"combien",
			"le total",
			"régler",
		}},
		{Help, []string{
			"aide",
			"aidez-moi",
			"que puis-je",
			"qu'est-ce que vous avez",
			"que recommandez-vous",
			"le menu",
			"la carte",
		}},
		{Repeat, []string{
			"répéter",
			"répétez",
			"redites",
			"pardon",
			"comment",
			"encore une fois",
		}},
		{Cancel, []string{
			"annuler",
			"annulez",
			"laisse tomber",
			"laissez tomber",
			"oubliez",
			"recommencer",
			"stop",
		}},
	}
}
