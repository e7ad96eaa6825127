// lexicon/tables_fr.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package lexicon

// French vocabulary tables. fr-FR and fr-CH share the food and common tables;
// the dialect maps differ (Swiss and Belgian regionalisms are canonical in
// fr-CH but regional elsewhere). Swiss numerals (septante, huitante, nonante)
// are handled by the numeral stage, not here.

// dialectFrFR maps casual and regional metropolitan French to canonical terms.
var dialectFrFR = map[string]string{
	"frites":        "pommes frites",
	"patates":       "pommes de terre",
	"patate":        "pomme de terre",
	"chocolatine":      "pain au chocolat",
	"pitance":          "nourriture",
	"bouffe":           "nourriture",
	"becqueter":        "manger",
	"boui-boui":        "petit restaurant",
	"troquet":          "café",
	"bistrot":          "café",
	"caoua":            "café",
	"kawa":             "café",
	"jaja":             "vin",
	"pinard":           "vin",
	"picrate":          "vin",
	"flotte":           "eau",
	"casse-croute":     "sandwich",
	"casse-dalle":      "sandwich",
	"resto":            "restaurant",
	"la douloureuse":   "l'addition",
}

// dialectFrCH maps Swiss French regionalisms to canonical terms.
var dialectFrCH = map[string]string{
	"frites":       "pommes frites",
	"patates":      "pommes de terre",
	"dejeuner":     "petit-déjeuner", // Swiss: déjeuner = morning meal
	"diner":        "déjeuner",       // Swiss: dîner = midday meal
	"souper":       "dîner",
	"cornet":       "sac",
	"panosse":      "serpillière",
	"boguet":       "mobylette",
	"natel":        "téléphone portable",
	"resto":        "restaurant",
	"une pive":     "une pomme de pin",
	"carnotzet":    "cave à vin",
	"bricelet":     "gaufrette",
	"taillaule":    "brioche",
	"longeole":     "saucisse",
	"papet":        "papet vaudois",
	"röstis":       "rösti",
	"la verrée":    "l'apéritif",
	"l'apéro":      "l'apéritif",
}

// foodFR is the domain food and drink vocabulary shared by both French
// variants. Applied only when a food or restaurant context is active.
var foodFR = []Entry{
	{"steak frites", "steak frites", CategoryMeat},
	{"entrecôte", "entrecôte", CategoryMeat},
	{"steak", "steak", CategoryMeat},
	{"steak tartare", "steak tartare", CategoryMeat},
	{"poulet rôti", "poulet rôti", CategoryMeat},
	{"poulet", "poulet", CategoryMeat},
	{"coq au vin", "coq au vin", CategoryMainCourse},
	{"boeuf bourguignon", "boeuf bourguignon", CategoryMeat},
	{"blanquette de veau", "blanquette de veau", CategoryMeat},
	{"gigot d'agneau", "gigot d'agneau", CategoryMeat},
	{"canard", "canard", CategoryMeat},
	{"confit de canard", "confit de canard", CategoryMeat},
	{"magret de canard", "magret de canard", CategoryMeat},
	{"saumon", "saumon", CategorySeafood},
	{"saumon grillé", "saumon grillé", CategorySeafood},
	{"moules frites", "moules frites", CategorySeafood},
	{"moules", "moules", CategorySeafood},
	{"huîtres", "huîtres", CategorySeafood},
	{"crevettes", "crevettes", CategorySeafood},
	{"homard", "homard", CategorySeafood},
	{"bouillabaisse", "bouillabaisse", CategorySeafood},
	{"quiche lorraine", "quiche lorraine", CategoryMainCourse},
	{"quiche", "quiche", CategoryMainCourse},
	{"croque-monsieur", "croque-monsieur", CategoryMainCourse},
	{"croque monsieur", "croque-monsieur", CategoryMainCourse},
	{"croque-madame", "croque-madame", CategoryMainCourse},
	{"omelette", "omelette", CategoryMainCourse},
	{"ratatouille", "ratatouille", CategoryMainCourse},
	{"cassoulet", "cassoulet", CategoryMainCourse},
	{"raclette", "raclette", CategoryMainCourse},
	{"fondue", "fondue au fromage", CategoryMainCourse},
	{"fondue au fromage", "fondue au fromage", CategoryMainCourse},
	{"tartiflette", "tartiflette", CategoryMainCourse},
	{"pizza", "pizza", CategoryMainCourse},
	{"pâtes", "pâtes", CategoryMainCourse},
	{"sandwich", "sandwich", CategoryMainCourse},
	{"pommes frites", "pommes frites", CategorySide},
	{"pommes de terre", "pommes de terre", CategorySide},
	{"purée", "purée de pommes de terre", CategorySide},
	{"riz", "riz", CategorySide},
	{"haricots verts", "haricots verts", CategorySide},
	{"légumes", "légumes", CategorySide},
	{"rösti", "rösti", CategorySide},
	{"salade verte", "salade verte", CategoryAppetizer},
	{"salade", "salade", CategoryAppetizer},
	{"soupe à l'oignon", "soupe à l'oignon", CategoryAppetizer},
	{"soupe", "soupe", CategoryAppetizer},
	{"escargots", "escargots", CategoryAppetizer},
	{"foie gras", "foie gras", CategoryAppetizer},
	{"pâté", "pâté", CategoryAppetizer},
	{"charcuterie", "assiette de charcuterie", CategoryAppetizer},
	{"fromage", "fromage", CategoryOther},
	{"plateau de fromages", "plateau de fromages", CategoryOther},
	{"baguette", "baguette", CategorySide},
	{"pain", "pain", CategorySide},
	{"croissant", "croissant", CategoryDessert},
	{"crêpe", "crêpe", CategoryDessert},
	{"crêpes", "crêpes", CategoryDessert},
	{"crème brûlée", "crème brûlée", CategoryDessert},
	{"mousse au chocolat", "mousse au chocolat", CategoryDessert},
	{"tarte tatin", "tarte tatin", CategoryDessert},
	{"tarte aux pommes", "tarte aux pommes", CategoryDessert},
	{"éclair", "éclair au chocolat", CategoryDessert},
	{"macarons", "macarons", CategoryDessert},
	{"profiteroles", "profiteroles", CategoryDessert},
	{"glace", "glace", CategoryDessert},
	{"café", "café", CategoryBeverage},
	{"café au lait", "café au lait", CategoryBeverage},
	{"café crème", "café crème", CategoryBeverage},
	{"expresso", "espresso", CategoryBeverage},
	{"espresso", "espresso", CategoryBeverage},
	{"noisette", "café noisette", CategoryBeverage},
	{"thé", "thé", CategoryBeverage},
	{"thé vert", "thé vert", CategoryBeverage},
	{"tisane", "tisane", CategoryBeverage},
	{"chocolat chaud", "chocolat chaud", CategoryBeverage},
	{"jus d'orange", "jus d'orange", CategoryBeverage},
	{"jus de pomme", "jus de pomme", CategoryBeverage},
	{"citron pressé", "citron pressé", CategoryBeverage},
	{"limonade", "limonade", CategoryBeverage},
	{"eau gazeuse", "eau gazeuse", CategoryBeverage},
	{"eau plate", "eau plate", CategoryBeverage},
	{"eau minérale", "eau minérale", CategoryBeverage},
	{"eau", "eau", CategoryBeverage},
	{"vin rouge", "vin rouge", CategoryBeverage},
	{"vin blanc", "vin blanc", CategoryBeverage},
	{"vin rosé", "vin rosé", CategoryBeverage},
	{"bière", "bière", CategoryBeverage},
	{"cidre", "cidre", CategoryBeverage},
	{"kir", "kir", CategoryBeverage},
}

// commonFR is restaurant vocabulary corrected regardless of context.
var commonFR = map[string]string{
	"svp":            "s'il vous plaît",
	"stp":            "s'il te plaît",
	"siouplait":      "s'il vous plaît",
	"s'il vous plait": "s'il vous plaît",
	"merci bcp":      "merci beaucoup",
	"bjr":            "bonjour",
	"bsr":            "bonsoir",
	"garçon":         "serveur",
	"serveuse":       "serveur",
	"la carte":       "le menu",
	"l'ardoise":      "le menu du jour",
	"ticket":         "reçu",
	"végé":           "végétarien",
	"vege":           "végétarien",
	"restau":         "restaurant",
	"ojourdui":       "aujourd'hui",
	"aujourdhui":     "aujourd'hui",
}

// phoneticFR maps common STT mispronunciation fragments to corrections.
var phoneticFR = map[string]string{
	"croissan ":  "croissant ",
	"bagette":    "baguette",
	"omellette":  "omelette",
	"omelete":    "omelette",
	"fromaje":    "fromage",
	"fromag ":    "fromage ",
	"buf ":       "boeuf ",
	"ognon":      "oignon",
	"kiche":      "quiche",
	"kroke":      "croque",
	"tartiflet ": "tartiflette ",
	"bouyabess":  "bouillabaisse",
	"escargo ":   "escargots ",
}

// abbrevFR expands abbreviations during normalization.
var abbrevFR = map[string]string{
	"&":    "et",
	"m":    "monsieur",
	"mme":  "madame",
	"mlle": "mademoiselle",
	"dr":   "docteur",
	"etc":  "et cetera",
	"nb":   "nota bene",
	"pdt":  "pomme de terre",
	"bcp":  "beaucoup",
	"qqch": "quelque chose",
}

// properNounsFR lists terms re-capitalized during cleanup.
var properNounsFR = []string{
	"bordeaux",
	"bourgogne",
	"champagne",
	"beaujolais",
	"chablis",
	"sancerre",
	"côtes du rhône",
	"camembert",
	"roquefort",
	"comté",
	"gruyère",
	"emmental",
	"reblochon",
	"normandie",
	"savoie",
	"provence",
	"alsace",
	"perrier",
	"evian",
	"orangina",
	"ricard",
}

func frenchTables(v Variant) *Tables {
	dialect := dialectFrFR
	if v == FrCH {
		dialect = dialectFrCH
	}
	food := make(map[string]Entry, len(foodFR))
	for _, e := range foodFR {
		food[e.Source] = e
	}
	return &Tables{
		Variant:       v,
		Dialect:       dialect,
		Food:          food,
		Common:        commonFR,
		Phonetic:      phoneticFR,
		Abbreviations: abbrevFR,
		ProperNouns:   properNounsFR,
	}
}
