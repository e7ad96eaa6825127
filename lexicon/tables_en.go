// lexicon/tables_en.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package lexicon

// English vocabulary tables. The base tables are shared between en-US and
// en-GB; the per-region dialect maps differ since the same word can be
// regional in one place and canonical in the other ("chips", "soda").

// dialectEnUS maps American regional and casual terms to canonical terms.
// Note "soda" itself is canonical under en-US and must not appear as a key.
var dialectEnUS = map[string]string{
	"chips":        "french fries",
	"pop":          "soda",
	"soda pop":     "soda",
	"coke":         "cola",
	"sub":          "sandwich",
	"hoagie":       "sandwich",
	"grinder":      "sandwich",
	"po boy":       "sandwich",
	"flapjacks":    "pancakes",
	"hotcakes":     "pancakes",
	"weiner":       "hot dog",
	"frank":        "hot dog",
	"frankfurter":  "hot dog",
	"jello":        "gelatin dessert",
	"candy":        "sweets",
	"takeout":      "takeaway",
	"to go":        "takeaway",
	"check":        "bill",
	"appetizers":   "starters",
	"entree":       "main course",
	"silverware":   "cutlery",
	"restroom":     "bathroom",
	"zucchini":     "courgette",
	"eggplant":     "aubergine",
	"cilantro":     "coriander",
	"arugula":      "rocket",
	"shrimp":       "prawns",
	"ground beef":  "minced beef",
	"cotton candy": "candy floss",
}

// dialectEnGB maps British regional terms to canonical terms. "soda" is left
// untouched here on purpose; it is an American term and remapping it under
// en-GB would corrupt e.g. "soda bread".
var dialectEnGB = map[string]string{
	"chips":         "french fries",
	"crisps":        "potato chips",
	"fizzy drink":   "soft drink",
	"squash":        "fruit cordial",
	"chippy":        "fish and chip shop",
	"butty":         "sandwich",
	"sarnie":        "sandwich",
	"barm":          "bread roll",
	"bap":           "bread roll",
	"cob":           "bread roll",
	"banger":        "sausage",
	"bangers":       "sausages",
	"toastie":       "toasted sandwich",
	"jacket potato": "baked potato",
	"pud":           "pudding",
	"cuppa":         "cup of tea",
	"brew":          "cup of tea",
	"bevvy":         "drink",
	"nosh":          "food",
	"scran":         "food",
	"loo":           "bathroom",
	"quid":          "pounds",
}

// foodEN is the domain food and drink vocabulary shared by both English
// variants. Applied only when a food or restaurant context is active.
var foodEN = []Entry{
	{"cheeseburger", "cheeseburger", CategoryMainCourse},
	{"hamburger", "hamburger", CategoryMainCourse},
	{"burger", "hamburger", CategoryMainCourse},
	{"double cheeseburger", "double cheeseburger", CategoryMainCourse},
	{"fries", "french fries", CategorySide},
	{"french fries", "french fries", CategorySide},
	{"onion rings", "onion rings", CategorySide},
	{"side salad", "side salad", CategoryAppetizer},
	{"caesar salad", "caesar salad", CategoryAppetizer},
	{"soup of the day", "soup of the day", CategoryAppetizer},
	{"tomato soup", "tomato soup", CategoryAppetizer},
	{"chicken wings", "chicken wings", CategoryAppetizer},
	{"wings", "chicken wings", CategoryAppetizer},
	{"nuggets", "chicken nuggets", CategoryMeat},
	{"chicken nuggets", "chicken nuggets", CategoryMeat},
	{"chicken sandwich", "chicken sandwich", CategoryMainCourse},
	{"grilled chicken", "grilled chicken", CategoryMeat},
	{"steak", "steak", CategoryMeat},
	{"ribeye", "ribeye steak", CategoryMeat},
	{"sirloin", "sirloin steak", CategoryMeat},
	{"bacon", "bacon", CategoryMeat},
	{"hot dog", "hot dog", CategoryMainCourse},
	{"pizza", "pizza", CategoryMainCourse},
	{"pepperoni pizza", "pepperoni pizza", CategoryMainCourse},
	{"margherita", "margherita pizza", CategoryMainCourse},
	{"pasta", "pasta", CategoryMainCourse},
	{"spaghetti", "spaghetti", CategoryMainCourse},
	{"lasagna", "lasagna", CategoryMainCourse},
	{"mac and cheese", "macaroni and cheese", CategoryMainCourse},
	{"fish and chips", "fish and chips", CategorySeafood},
	{"salmon", "salmon", CategorySeafood},
	{"grilled salmon", "grilled salmon", CategorySeafood},
	{"shrimp", "shrimp", CategorySeafood},
	{"lobster", "lobster", CategorySeafood},
	{"fish tacos", "fish tacos", CategorySeafood},
	{"taco", "taco", CategoryMainCourse},
	{"tacos", "tacos", CategoryMainCourse},
	{"burrito", "burrito", CategoryMainCourse},
	{"quesadilla", "quesadilla", CategoryMainCourse},
	{"sandwich", "sandwich", CategoryMainCourse},
	{"blt", "bacon lettuce tomato sandwich", CategoryMainCourse},
	{"club sandwich", "club sandwich", CategoryMainCourse},
	{"wrap", "wrap", CategoryMainCourse},
	{"pancakes", "pancakes", CategoryDessert},
	{"waffles", "waffles", CategoryDessert},
	{"omelet", "omelette", CategoryMainCourse},
	{"omelette", "omelette", CategoryMainCourse},
	{"scrambled eggs", "scrambled eggs", CategoryMainCourse},
	{"mashed potatoes", "mashed potatoes", CategorySide},
	{"baked potato", "baked potato", CategorySide},
	{"rice", "rice", CategorySide},
	{"coleslaw", "coleslaw", CategorySide},
	{"garlic bread", "garlic bread", CategorySide},
	{"breadsticks", "breadsticks", CategorySide},
	{"mozzarella sticks", "mozzarella sticks", CategoryAppetizer},
	{"nachos", "nachos", CategoryAppetizer},
	{"guacamole", "guacamole", CategoryAppetizer},
	{"ice cream", "ice cream", CategoryDessert},
	{"sundae", "ice cream sundae", CategoryDessert},
	{"milkshake", "milkshake", CategoryBeverage},
	{"shake", "milkshake", CategoryBeverage},
	{"brownie", "chocolate brownie", CategoryDessert},
	{"cheesecake", "cheesecake", CategoryDessert},
	{"apple pie", "apple pie", CategoryDessert},
	{"chocolate cake", "chocolate cake", CategoryDessert},
	{"cookie", "cookie", CategoryDessert},
	{"donut", "doughnut", CategoryDessert},
	{"doughnut", "doughnut", CategoryDessert},
	{"muffin", "muffin", CategoryDessert},
	{"coffee", "coffee", CategoryBeverage},
	{"espresso", "espresso", CategoryBeverage},
	{"latte", "latte", CategoryBeverage},
	{"cappuccino", "cappuccino", CategoryBeverage},
	{"americano", "americano", CategoryBeverage},
	{"mocha", "mocha", CategoryBeverage},
	{"iced coffee", "iced coffee", CategoryBeverage},
	{"hot chocolate", "hot chocolate", CategoryBeverage},
	{"orange juice", "orange juice", CategoryBeverage},
	{"apple juice", "apple juice", CategoryBeverage},
	{"lemonade", "lemonade", CategoryBeverage},
	{"iced tea", "iced tea", CategoryBeverage},
	{"green tea", "green tea", CategoryBeverage},
	{"soda", "soda", CategoryBeverage},
	{"cola", "cola", CategoryBeverage},
	{"root beer", "root beer", CategoryBeverage},
	{"sparkling water", "sparkling water", CategoryBeverage},
	{"still water", "still water", CategoryBeverage},
	{"water", "water", CategoryBeverage},
	{"beer", "beer", CategoryBeverage},
	{"red wine", "red wine", CategoryBeverage},
	{"white wine", "white wine", CategoryBeverage},
	{"smoothie", "smoothie", CategoryBeverage},
}

// commonEN is restaurant vocabulary corrected regardless of context.
var commonEN = map[string]string{
	"da":        "the",
	"dat":       "that",
	"dis":       "this",
	"dem":       "them",
	"em":        "them",
	"somethin":  "something",
	"nothin":    "nothing",
	"anythin":   "anything",
	"tryna":     "trying to",
	"prolly":    "probably",
	"menu card": "menu",
	"waiter":    "server",
	"waitress":  "server",
	"tab":       "bill",
	"receipt":   "receipt",
	"veggie":    "vegetarian",
	"veg":       "vegetarian",
	"gluten three": "gluten free", // STT error: "free" heard as "three"
	"takeway":      "takeaway",
	"resturant":    "restaurant",
	"restrant":     "restaurant",
}

// phoneticEN maps common STT mispronunciation fragments to corrections.
// Matched at the substring level since the error can appear inside a token.
var phoneticEN = map[string]string{
	"expresso":   "espresso",
	"cappucino":  "cappuccino",
	"capuccino":  "cappuccino",
	"omlet":      "omelet",
	"sandwhich":  "sandwich",
	"sanwich":    "sandwich",
	"hamburguer": "hamburger",
	"chese":      "cheese",
	"letuce":     "lettuce",
	"tomatoe":    "tomato",
	"potatoe":    "potato",
	"brocoli":    "broccoli",
	"spagetti":   "spaghetti",
	"lasagne":    "lasagna",
	"guacamoly":  "guacamole",
	"kesadilla":  "quesadilla",
}

// abbrevEN expands abbreviations during normalization.
var abbrevEN = map[string]string{
	"&":    "and",
	"mr":   "mister",
	"mrs":  "missus",
	"dr":   "doctor",
	"etc":  "etcetera",
	"w/":   "with",
	"w/o":  "without",
	"oz":   "ounce",
	"lb":   "pound",
	"pls":  "please",
	"plz":  "please",
	"thx":  "thanks",
	"brb":  "be right back",
	"asap": "as soon as possible",
}

// properNounsEN lists terms re-capitalized during cleanup.
var properNounsEN = []string{
	"coca-cola",
	"pepsi",
	"sprite",
	"fanta",
	"heinz",
	"tabasco",
	"sriracha",
	"parmesan",
	"cheddar",
	"brie",
	"camembert",
	"gouda",
	"bordeaux",
	"burgundy",
	"champagne",
	"chardonnay",
	"merlot",
	"caesar",
	"buffalo",
	"philly",
	"hawaiian",
	"cajun",
	"dijon",
}

func englishTables(v Variant) *Tables {
	dialect := dialectEnUS
	if v == EnGB {
		dialect = dialectEnGB
	}
	food := make(map[string]Entry, len(foodEN))
	for _, e := range foodEN {
		food[e.Source] = e
	}
	return &Tables{
		Variant:       v,
		Dialect:       dialect,
		Food:          food,
		Common:        commonEN,
		Phonetic:      phoneticEN,
		Abbreviations: abbrevEN,
		ProperNouns:   properNounsEN,
	}
}
