package generation

import "github.com/alchemorsel/recipegen/internal/domain/recipe"

func ing(name string, amount float64, unit recipe.MeasurementUnit) recipe.Ingredient {
	return recipe.Ingredient{Name: name, Amount: amount, Unit: unit}
}

const (
	tsp   = recipe.MeasurementUnitTeaspoon
	tbsp  = recipe.MeasurementUnitTablespoon
	cup   = recipe.MeasurementUnitCup
	lb    = recipe.MeasurementUnitPound
	piece = recipe.MeasurementUnitPiece
	clove = recipe.MeasurementUnitClove
	gram  = recipe.MeasurementUnitGram
)

// ingredientTemplates personalize with the lead ingredients, e.g. "Chicken and Rice"
var ingredientTemplates = []template{
	{
		titleFormat: "%s Stir-Fry",
		description: "A quick, colorful stir-fry built around %s.",
		difficulty:  recipe.DifficultyEasy,
		prepTime:    15, cookTime: 15, servings: 4, calories: 320,
		staples: []recipe.Ingredient{
			ing("vegetable oil", 2, tbsp),
			ing("garlic", 2, clove),
			ing("soy sauce", 2, tbsp),
		},
		instructions: []string{
			"Cut all ingredients into even, bite-sized pieces.",
			"Heat the oil in a wok or large skillet over high heat and fry the garlic for 30 seconds.",
			"Add the remaining ingredients, firmest first, and stir-fry for 8 to 10 minutes.",
			"Toss with the soy sauce and serve immediately.",
		},
	},
	{
		titleFormat: "Baked %s Casserole",
		description: "A comforting oven-baked casserole featuring %s.",
		difficulty:  recipe.DifficultyEasy,
		prepTime:    20, cookTime: 35, servings: 4, calories: 380,
		staples: []recipe.Ingredient{
			ing("olive oil", 1, tbsp),
			ing("onion", 1, piece),
			ing("salt", 1, tsp),
			ing("black pepper", 0.5, tsp),
		},
		instructions: []string{
			"Preheat the oven to 190°C (375°F) and oil a baking dish.",
			"Chop the onion and the main ingredients and season with salt and pepper.",
			"Layer everything in the dish and cover with foil.",
			"Bake for 30 minutes, uncover, and bake 5 minutes more until golden.",
		},
	},
	{
		titleFormat: "Simple %s Skillet",
		description: "A one-pan skillet dinner with %s.",
		difficulty:  recipe.DifficultyEasy,
		prepTime:    10, cookTime: 20, servings: 4, calories: 300,
		staples: []recipe.Ingredient{
			ing("olive oil", 2, tbsp),
			ing("garlic", 2, clove),
			ing("salt", 1, tsp),
			ing("water", 0.5, cup),
		},
		instructions: []string{
			"Prepare and chop all ingredients.",
			"Warm the oil in a large skillet over medium heat and soften the garlic.",
			"Add the remaining ingredients with the water, cover, and simmer for 15 minutes.",
			"Season with salt and serve hot.",
		},
	},
}

// genericCuisineTemplate serves cuisines without a curated table.
// It must stay vegetarian so filtered results are never empty.
var genericCuisineTemplate = template{
	titleFormat: "%s-Style Vegetable Rice Bowl",
	description: "A simple rice bowl with seasonal vegetables, seasoned in the %s style.",
	difficulty:  recipe.DifficultyEasy,
	prepTime:    15, cookTime: 25, servings: 4, calories: 350,
	staples: []recipe.Ingredient{
		ing("rice", 1.5, cup),
		ing("mixed vegetables", 3, cup),
		ing("olive oil", 2, tbsp),
		ing("garlic", 2, clove),
		ing("salt", 1, tsp),
	},
	instructions: []string{
		"Cook the rice according to package directions.",
		"Sauté the garlic and vegetables in oil until tender.",
		"Season with salt and regional spices and serve over the rice.",
	},
}

// cuisineTemplates personalize with the cuisine name, e.g. "Italian".
// Every table keeps at least one vegetarian recipe.
var cuisineTemplates = map[recipe.CuisineType][]template{
	recipe.CuisineTypeItalian: {
		{
			titleFormat: "%s Margherita Pizza",
			description: "The classic %s pizza with tomato, mozzarella, and basil.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    90, cookTime: 12, servings: 4, calories: 650,
			staples: []recipe.Ingredient{
				ing("pizza dough", 500, gram),
				ing("crushed tomatoes", 1, cup),
				ing("fresh mozzarella", 250, gram),
				ing("fresh basil", 0.25, cup),
				ing("olive oil", 2, tbsp),
			},
			instructions: []string{
				"Let the dough rise until doubled, about one hour.",
				"Preheat the oven as hot as it goes with a tray inside.",
				"Stretch the dough, spread the tomatoes, and top with torn mozzarella.",
				"Bake for 10 to 12 minutes, then finish with basil and olive oil.",
			},
			culturalNotes: "Created in Naples, the pizza carries the colors of the Italian flag.",
		},
		{
			titleFormat: "%s Mushroom Risotto",
			description: "Creamy %s risotto slowly cooked with mushrooms and parmesan.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    15, cookTime: 35, servings: 4, calories: 480,
			staples: []recipe.Ingredient{
				ing("arborio rice", 1.5, cup),
				ing("mushrooms", 300, gram),
				ing("vegetable broth", 5, cup),
				ing("parmesan", 0.5, cup),
				ing("onion", 1, piece),
				ing("butter", 2, tbsp),
			},
			instructions: []string{
				"Keep the broth warm in a saucepan.",
				"Soften the onion in butter, then toast the rice for two minutes.",
				"Add broth one ladle at a time, stirring until absorbed, for about 20 minutes.",
				"Stir in the sautéed mushrooms and parmesan and rest for two minutes.",
			},
			culturalNotes: "Risotto comes from the rice-growing plains of northern Italy.",
		},
		{
			titleFormat: "%s Spaghetti Carbonara",
			description: "Roman-style %s pasta with eggs, pecorino, and crisp pancetta.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    10, cookTime: 15, servings: 4, calories: 620,
			staples: []recipe.Ingredient{
				ing("spaghetti", 400, gram),
				ing("pancetta", 150, gram),
				ing("eggs", 3, piece),
				ing("pecorino romano", 0.75, cup),
				ing("black pepper", 1, tsp),
			},
			instructions: []string{
				"Boil the spaghetti in salted water until al dente.",
				"Crisp the pancetta in a dry pan.",
				"Whisk the eggs with the cheese and plenty of pepper.",
				"Toss the hot pasta with the pancetta off the heat, then the egg mixture, loosening with pasta water.",
			},
			culturalNotes: "A Roman dish; the creaminess comes from eggs and cheese, never cream.",
		},
		{
			titleFormat: "%s Chicken Cacciatore",
			description: "Hunter-style %s chicken braised with tomatoes and peppers.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    20, cookTime: 45, servings: 4, calories: 450,
			staples: []recipe.Ingredient{
				ing("chicken thighs", 2, lb),
				ing("crushed tomatoes", 2, cup),
				ing("bell pepper", 2, piece),
				ing("onion", 1, piece),
				ing("olive oil", 2, tbsp),
			},
			instructions: []string{
				"Brown the chicken in olive oil and set aside.",
				"Cook the onion and peppers until soft.",
				"Add the tomatoes, return the chicken, and simmer covered for 40 minutes.",
			},
			culturalNotes: "Cacciatore means hunter; the dish was traditionally made with game.",
		},
		{
			titleFormat: "%s Minestrone",
			description: "A hearty %s vegetable soup with beans and pasta.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    20, cookTime: 40, servings: 6, calories: 280,
			staples: []recipe.Ingredient{
				ing("cannellini beans", 1.5, cup),
				ing("small pasta", 1, cup),
				ing("carrot", 2, piece),
				ing("celery", 2, piece),
				ing("zucchini", 1, piece),
				ing("vegetable broth", 6, cup),
			},
			instructions: []string{
				"Dice the vegetables and sweat them in olive oil.",
				"Add the broth and beans and simmer for 25 minutes.",
				"Add the pasta and cook until tender.",
			},
			culturalNotes: "Every Italian region has its own minestrone, built on whatever is in season.",
		},
	},
	recipe.CuisineTypeMexican: {
		{
			titleFormat: "%s Black Bean Tacos",
			description: "Smoky %s tacos filled with spiced black beans and fresh salsa.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    15, cookTime: 10, servings: 4, calories: 380,
			staples: []recipe.Ingredient{
				ing("black beans", 2, cup),
				ing("corn tortillas", 8, piece),
				ing("ground cumin", 1, tsp),
				ing("tomato", 2, piece),
				ing("lime", 1, piece),
				ing("cilantro", 0.25, cup),
			},
			instructions: []string{
				"Warm the beans with cumin and mash lightly.",
				"Dice the tomato with cilantro and lime juice for a quick salsa.",
				"Heat the tortillas and fill with beans and salsa.",
			},
			culturalNotes: "Tacos de frijol are everyday street food across Mexico.",
		},
		{
			titleFormat: "%s Chicken Enchiladas",
			description: "Rolled %s tortillas with shredded chicken baked in red sauce.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    25, cookTime: 25, servings: 4, calories: 520,
			staples: []recipe.Ingredient{
				ing("cooked chicken", 1, lb),
				ing("corn tortillas", 8, piece),
				ing("enchilada sauce", 2, cup),
				ing("queso fresco", 1, cup),
			},
			instructions: []string{
				"Preheat the oven to 190°C (375°F).",
				"Dip each tortilla in warm sauce, fill with chicken, and roll.",
				"Cover with the remaining sauce and cheese and bake for 20 minutes.",
			},
			culturalNotes: "Enchiladas date to Mayan times, when tortillas were rolled around small fish.",
		},
		{
			titleFormat: "%s Vegetable Quesadillas",
			description: "Crisp %s quesadillas with peppers, onions, and melted cheese.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 10, servings: 4, calories: 420,
			staples: []recipe.Ingredient{
				ing("flour tortillas", 4, piece),
				ing("oaxaca cheese", 2, cup),
				ing("bell pepper", 1, piece),
				ing("onion", 1, piece),
			},
			instructions: []string{
				"Sauté the peppers and onion until soft.",
				"Fill the tortillas with vegetables and cheese and fold.",
				"Toast in a dry pan until golden on both sides.",
			},
		},
		{
			titleFormat: "%s Pozole Rojo",
			description: "A rich %s hominy stew with pork and dried red chilies.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    30, cookTime: 120, servings: 6, calories: 510,
			staples: []recipe.Ingredient{
				ing("pork shoulder", 2, lb),
				ing("hominy", 4, cup),
				ing("guajillo chilies", 6, piece),
				ing("garlic", 4, clove),
				ing("onion", 1, piece),
				ing("radishes", 6, piece),
			},
			instructions: []string{
				"Simmer the pork with onion and garlic until tender, about 90 minutes.",
				"Soak and blend the chilies, then strain into the pot.",
				"Add the hominy and simmer for 30 minutes more.",
				"Serve topped with sliced radishes and lime.",
			},
			culturalNotes: "Pozole is a celebration dish, often served on Independence Day.",
		},
		{
			titleFormat: "%s Elote Corn Salad",
			description: "Charred %s street corn tossed with lime, chili, and cotija.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 10, servings: 4, calories: 260,
			staples: []recipe.Ingredient{
				ing("corn kernels", 4, cup),
				ing("cotija cheese", 0.5, cup),
				ing("mayonnaise", 2, tbsp),
				ing("chili powder", 1, tsp),
				ing("lime", 1, piece),
			},
			instructions: []string{
				"Char the corn in a hot dry pan.",
				"Stir in the mayonnaise and lime juice while warm.",
				"Finish with cotija and chili powder.",
			},
			culturalNotes: "Esquites is the cup-served version of elote sold by street vendors.",
		},
	},
	recipe.CuisineTypeChinese: {
		{
			titleFormat: "%s Vegetable Fried Rice",
			description: "Wok-tossed %s fried rice with egg and vegetables.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 10, servings: 4, calories: 400,
			staples: []recipe.Ingredient{
				ing("cooked rice", 4, cup),
				ing("eggs", 2, piece),
				ing("peas and carrots", 1, cup),
				ing("scallions", 3, piece),
				ing("soy sauce", 2, tbsp),
			},
			instructions: []string{
				"Scramble the eggs in a hot wok and set aside.",
				"Stir-fry the vegetables, then add the rice and break up any clumps.",
				"Season with soy sauce, fold in the egg and scallions, and serve.",
			},
			culturalNotes: "Fried rice was invented to use up day-old rice, which fries best.",
		},
		{
			titleFormat: "%s Kung Pao Chicken",
			description: "Sichuan-style %s chicken with peanuts and dried chilies.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    20, cookTime: 10, servings: 4, calories: 480,
			staples: []recipe.Ingredient{
				ing("chicken breast", 1, lb),
				ing("roasted peanuts", 0.5, cup),
				ing("dried chilies", 8, piece),
				ing("soy sauce", 2, tbsp),
				ing("black vinegar", 1, tbsp),
			},
			instructions: []string{
				"Dice and marinate the chicken in soy sauce.",
				"Fry the chilies briefly, then stir-fry the chicken until cooked.",
				"Add vinegar and peanuts and toss to coat.",
			},
			culturalNotes: "Named after a Qing dynasty governor of Sichuan.",
		},
		{
			titleFormat: "%s Mapo Tofu",
			description: "Silky %s tofu in a spicy, numbing bean sauce.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    10, cookTime: 15, servings: 4, calories: 300,
			staples: []recipe.Ingredient{
				ing("soft tofu", 400, gram),
				ing("doubanjiang", 2, tbsp),
				ing("sichuan peppercorns", 1, tsp),
				ing("garlic", 3, clove),
				ing("scallions", 2, piece),
			},
			instructions: []string{
				"Cube the tofu and blanch in salted water.",
				"Fry the bean paste and garlic in oil until red and fragrant.",
				"Add the tofu with a little water, simmer, and finish with ground peppercorns.",
			},
		},
		{
			titleFormat: "%s Beef and Broccoli",
			description: "Tender %s beef stir-fried with broccoli in oyster sauce.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    15, cookTime: 10, servings: 4, calories: 430,
			staples: []recipe.Ingredient{
				ing("flank steak", 1, lb),
				ing("broccoli florets", 4, cup),
				ing("oyster sauce", 3, tbsp),
				ing("garlic", 3, clove),
				ing("cornstarch", 1, tbsp),
			},
			instructions: []string{
				"Slice the beef thinly against the grain and toss with cornstarch.",
				"Sear the beef in a hot wok and set aside.",
				"Stir-fry the broccoli and garlic, return the beef, and glaze with oyster sauce.",
			},
		},
		{
			titleFormat: "%s Garlic Bok Choy",
			description: "Quick %s stir-fried bok choy with plenty of garlic.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    5, cookTime: 5, servings: 4, calories: 90,
			staples: []recipe.Ingredient{
				ing("baby bok choy", 500, gram),
				ing("garlic", 4, clove),
				ing("light soy sauce", 1, tbsp),
				ing("vegetable oil", 1, tbsp),
			},
			instructions: []string{
				"Halve the bok choy and rinse well.",
				"Fry the garlic in oil until fragrant.",
				"Add the bok choy and soy sauce and toss until just wilted.",
			},
			culturalNotes: "Simple greens like these round out almost every family-style meal.",
		},
	},
	recipe.CuisineTypeIndian: {
		{
			titleFormat: "%s Chana Masala",
			description: "A %s chickpea curry in a tangy tomato and onion gravy.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    15, cookTime: 30, servings: 4, calories: 360,
			staples: []recipe.Ingredient{
				ing("chickpeas", 3, cup),
				ing("onion", 1, piece),
				ing("tomato", 2, piece),
				ing("garam masala", 2, tsp),
				ing("ginger", 1, tbsp),
			},
			instructions: []string{
				"Fry the onion and ginger until deep golden.",
				"Add the tomatoes and spices and cook into a thick gravy.",
				"Stir in the chickpeas and simmer for 15 minutes.",
			},
			culturalNotes: "A Punjabi staple often eaten with bhature or rice.",
		},
		{
			titleFormat: "%s Butter Chicken",
			description: "Tender %s chicken in a creamy, mildly spiced tomato sauce.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    30, cookTime: 30, servings: 4, calories: 560,
			staples: []recipe.Ingredient{
				ing("chicken thighs", 1.5, lb),
				ing("yogurt", 0.5, cup),
				ing("tomato puree", 1.5, cup),
				ing("butter", 3, tbsp),
				ing("cream", 0.5, cup),
			},
			instructions: []string{
				"Marinate the chicken in yogurt and spices, then sear.",
				"Simmer the tomato puree with butter until glossy.",
				"Add the chicken and cream and simmer for 10 minutes.",
			},
			culturalNotes: "Murgh makhani was created in Delhi in the 1950s.",
		},
		{
			titleFormat: "%s Palak Paneer",
			description: "Fresh %s cheese cubes in a smooth spiced spinach sauce.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    15, cookTime: 25, servings: 4, calories: 390,
			staples: []recipe.Ingredient{
				ing("spinach", 500, gram),
				ing("paneer", 250, gram),
				ing("onion", 1, piece),
				ing("garlic", 3, clove),
				ing("cumin seeds", 1, tsp),
			},
			instructions: []string{
				"Blanch and puree the spinach.",
				"Fry cumin, onion, and garlic, then add the puree.",
				"Fold in the paneer and simmer for five minutes.",
			},
		},
		{
			titleFormat: "%s Lamb Rogan Josh",
			description: "Kashmiri-style %s lamb slow-cooked in aromatic spices.",
			difficulty:  recipe.DifficultyHard,
			prepTime:    20, cookTime: 90, servings: 4, calories: 560,
			staples: []recipe.Ingredient{
				ing("lamb shoulder", 2, lb),
				ing("plain yogurt", 1, cup),
				ing("kashmiri chili powder", 2, tsp),
				ing("onion", 2, piece),
				ing("ginger", 1, tbsp),
			},
			instructions: []string{
				"Brown the lamb in batches.",
				"Fry the onions until deep golden, then add ginger and chili.",
				"Stir in the yogurt a spoonful at a time, return the lamb, and braise for 80 minutes.",
			},
			culturalNotes: "Rogan josh arrived in Kashmir with the Mughals.",
		},
		{
			titleFormat: "%s Dal Tadka",
			description: "Comforting %s yellow lentils finished with a sizzling spice oil.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 30, servings: 4, calories: 310,
			staples: []recipe.Ingredient{
				ing("yellow lentils", 1, cup),
				ing("cumin seeds", 1, tsp),
				ing("ground turmeric", 0.5, tsp),
				ing("ghee", 2, tbsp),
				ing("garlic", 3, clove),
			},
			instructions: []string{
				"Simmer the lentils with turmeric until soft.",
				"Heat the ghee and fry the cumin and garlic until golden.",
				"Pour the tadka over the lentils and serve with rice.",
			},
		},
	},
	recipe.CuisineTypeJapanese: {
		{
			titleFormat: "%s Vegetable Tempura",
			description: "Light, crisp %s tempura of seasonal vegetables.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    20, cookTime: 15, servings: 4, calories: 410,
			staples: []recipe.Ingredient{
				ing("sweet potato", 1, piece),
				ing("eggplant", 1, piece),
				ing("flour", 1, cup),
				ing("ice water", 1, cup),
				ing("vegetable oil", 4, cup),
			},
			instructions: []string{
				"Slice the vegetables thinly.",
				"Mix flour and ice water briefly; lumps are fine.",
				"Dip and fry in 170°C oil until pale gold, then drain.",
			},
			culturalNotes: "Tempura reached Japan with Portuguese traders in the 16th century.",
		},
		{
			titleFormat: "%s Chicken Teriyaki",
			description: "Glazed %s chicken with a sweet soy teriyaki sauce.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 20, servings: 4, calories: 430,
			staples: []recipe.Ingredient{
				ing("chicken thighs", 1.5, lb),
				ing("soy sauce", 3, tbsp),
				ing("mirin", 3, tbsp),
				ing("sugar", 1, tbsp),
			},
			instructions: []string{
				"Pan-fry the chicken skin side down until crisp.",
				"Add soy sauce, mirin, and sugar and reduce to a glaze.",
				"Slice and serve with rice.",
			},
		},
		{
			titleFormat: "%s Miso Soup",
			description: "A warming %s miso soup with tofu and wakame.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    5, cookTime: 10, servings: 4, calories: 90,
			staples: []recipe.Ingredient{
				ing("kombu dashi", 4, cup),
				ing("white miso", 3, tbsp),
				ing("silken tofu", 200, gram),
				ing("dried wakame", 1, tbsp),
			},
			instructions: []string{
				"Heat the dashi without boiling.",
				"Dissolve the miso in a ladle of dashi and stir it back in.",
				"Add the tofu and wakame and serve.",
			},
			culturalNotes: "Miso soup is part of the traditional Japanese breakfast.",
		},
		{
			titleFormat: "%s Salmon Donburi",
			description: "A %s rice bowl with glazed salmon and pickled ginger.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 15, servings: 2, calories: 540,
			staples: []recipe.Ingredient{
				ing("salmon fillet", 0.75, lb),
				ing("short-grain rice", 1, cup),
				ing("soy sauce", 2, tbsp),
				ing("mirin", 1, tbsp),
				ing("pickled ginger", 2, tbsp),
			},
			instructions: []string{
				"Cook the rice.",
				"Pan-fry the salmon, then glaze with soy sauce and mirin.",
				"Flake over the rice and top with pickled ginger.",
			},
		},
		{
			titleFormat: "%s Vegetable Yaki Udon",
			description: "Chewy %s udon noodles stir-fried with cabbage and mushrooms.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 10, servings: 2, calories: 450,
			staples: []recipe.Ingredient{
				ing("udon noodles", 400, gram),
				ing("cabbage", 2, cup),
				ing("shiitake mushrooms", 6, piece),
				ing("soy sauce", 2, tbsp),
				ing("sesame oil", 1, tbsp),
			},
			instructions: []string{
				"Loosen the noodles in hot water and drain.",
				"Stir-fry the cabbage and mushrooms in sesame oil.",
				"Add the noodles and soy sauce and toss until coated.",
			},
			culturalNotes: "Yaki udon was first made in Kitakyushu after the war when soba was scarce.",
		},
	},
	recipe.CuisineTypeThai: {
		{
			titleFormat: "%s Tofu Pad Thai",
			description: "Stir-fried %s rice noodles with tofu, peanuts, and tamarind.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    20, cookTime: 10, servings: 4, calories: 520,
			staples: []recipe.Ingredient{
				ing("rice noodles", 250, gram),
				ing("firm tofu", 200, gram),
				ing("tamarind paste", 2, tbsp),
				ing("bean sprouts", 1, cup),
				ing("roasted peanuts", 0.25, cup),
			},
			instructions: []string{
				"Soak the noodles until pliable.",
				"Fry the tofu until golden, then add noodles and tamarind.",
				"Toss with sprouts and top with peanuts.",
			},
			culturalNotes: "Pad thai was promoted as a national dish in the 1930s.",
		},
		{
			titleFormat: "%s Green Curry with Chicken",
			description: "Fragrant %s green curry with chicken and coconut milk.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    15, cookTime: 20, servings: 4, calories: 490,
			staples: []recipe.Ingredient{
				ing("chicken breast", 1, lb),
				ing("green curry paste", 3, tbsp),
				ing("coconut milk", 2, cup),
				ing("thai basil", 0.5, cup),
			},
			instructions: []string{
				"Fry the curry paste in a little coconut milk.",
				"Add the chicken and remaining coconut milk and simmer.",
				"Finish with basil.",
			},
		},
		{
			titleFormat: "%s Coconut Mushroom Soup",
			description: "A creamy %s tom kha soup with mushrooms and lemongrass.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 15, servings: 4, calories: 260,
			staples: []recipe.Ingredient{
				ing("coconut milk", 2, cup),
				ing("mushrooms", 200, gram),
				ing("lemongrass", 2, piece),
				ing("galangal", 1, tbsp),
				ing("lime", 1, piece),
			},
			instructions: []string{
				"Simmer the lemongrass and galangal in coconut milk.",
				"Add the mushrooms and cook for five minutes.",
				"Season with lime juice.",
			},
		},
		{
			titleFormat: "%s Basil Pork Stir-Fry",
			description: "Pad kra pao: %s minced pork with holy basil and chilies.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 10, servings: 2, calories: 470,
			staples: []recipe.Ingredient{
				ing("ground pork", 0.75, lb),
				ing("thai basil", 1, cup),
				ing("bird's eye chilies", 3, piece),
				ing("fish sauce", 1, tbsp),
				ing("oyster sauce", 1, tbsp),
			},
			instructions: []string{
				"Pound the garlic and chilies together.",
				"Stir-fry the pork until browned, then add the sauces.",
				"Fold in the basil until wilted and serve over rice with a fried egg.",
			},
			culturalNotes: "Pad kra pao is one of the most common one-plate lunches in Bangkok.",
		},
		{
			titleFormat: "%s Green Papaya Salad",
			description: "Crunchy %s papaya salad pounded with lime, chili, and peanuts.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    20, cookTime: 0, servings: 4, calories: 180,
			staples: []recipe.Ingredient{
				ing("green papaya", 3, cup),
				ing("cherry tomatoes", 8, piece),
				ing("lime", 2, piece),
				ing("palm sugar", 1, tbsp),
				ing("roasted peanuts", 0.25, cup),
			},
			instructions: []string{
				"Shred the papaya into thin strips.",
				"Lightly pound the tomatoes with lime juice and palm sugar.",
				"Toss in the papaya and top with peanuts.",
			},
		},
	},
	recipe.CuisineTypeFrench: {
		{
			titleFormat: "%s Ratatouille",
			description: "A Provençal %s stew of summer vegetables.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    25, cookTime: 45, servings: 6, calories: 210,
			staples: []recipe.Ingredient{
				ing("eggplant", 1, piece),
				ing("zucchini", 2, piece),
				ing("bell pepper", 2, piece),
				ing("tomato", 4, piece),
				ing("olive oil", 3, tbsp),
				ing("herbes de provence", 1, tsp),
			},
			instructions: []string{
				"Cut the vegetables into even pieces.",
				"Cook each vegetable separately in olive oil.",
				"Combine with herbs and simmer gently for 30 minutes.",
			},
			culturalNotes: "Ratatouille comes from Nice, where it was a peasant summer dish.",
		},
		{
			titleFormat: "%s Coq au Vin",
			description: "Classic %s chicken braised in red wine with mushrooms.",
			difficulty:  recipe.DifficultyHard,
			prepTime:    30, cookTime: 90, servings: 4, calories: 610,
			staples: []recipe.Ingredient{
				ing("chicken legs", 3, lb),
				ing("red wine", 3, cup),
				ing("mushrooms", 250, gram),
				ing("pearl onions", 1, cup),
			},
			instructions: []string{
				"Marinate the chicken in wine overnight.",
				"Brown the chicken, then braise in the wine for 75 minutes.",
				"Add the mushrooms and onions for the last 15 minutes.",
			},
		},
		{
			titleFormat: "%s Onion Soup",
			description: "Slow-caramelized %s onion soup under a cheese crust.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    15, cookTime: 70, servings: 4, calories: 420,
			staples: []recipe.Ingredient{
				ing("onion", 4, piece),
				ing("butter", 3, tbsp),
				ing("vegetable broth", 6, cup),
				ing("baguette", 1, piece),
				ing("gruyère", 1, cup),
			},
			instructions: []string{
				"Caramelize the sliced onions in butter for 45 minutes.",
				"Add the broth and simmer for 20 minutes.",
				"Top with toasted bread and cheese and broil until bubbling.",
			},
		},
		{
			titleFormat: "%s Quiche Lorraine",
			description: "A %s savory tart of eggs, cream, and smoky bacon.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    25, cookTime: 40, servings: 6, calories: 520,
			staples: []recipe.Ingredient{
				ing("shortcrust pastry", 1, piece),
				ing("bacon lardons", 200, gram),
				ing("eggs", 3, piece),
				ing("heavy cream", 1.5, cup),
				ing("nutmeg", 0.25, tsp),
			},
			instructions: []string{
				"Blind-bake the pastry case.",
				"Crisp the bacon and scatter over the base.",
				"Whisk the eggs, cream, and nutmeg, pour in, and bake until just set.",
			},
			culturalNotes: "Quiche comes from Lorraine, on the German border.",
		},
		{
			titleFormat: "%s Potato Gratin",
			description: "Gratin dauphinois: %s potatoes baked slowly in garlic cream.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    20, cookTime: 75, servings: 6, calories: 390,
			staples: []recipe.Ingredient{
				ing("waxy potatoes", 2, lb),
				ing("heavy cream", 1.5, cup),
				ing("garlic", 2, clove),
				ing("butter", 1, tbsp),
			},
			instructions: []string{
				"Rub a baking dish with garlic and butter.",
				"Layer thinly sliced potatoes, pouring cream over each layer.",
				"Bake until tender and golden on top.",
			},
		},
	},
	recipe.CuisineTypeMediterranean: {
		{
			titleFormat: "%s Greek Salad",
			description: "A crisp %s salad of tomato, cucumber, olives, and feta.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    15, cookTime: 0, servings: 4, calories: 230,
			staples: []recipe.Ingredient{
				ing("tomato", 3, piece),
				ing("cucumber", 1, piece),
				ing("kalamata olives", 0.5, cup),
				ing("feta", 200, gram),
				ing("olive oil", 3, tbsp),
			},
			instructions: []string{
				"Cut the tomatoes and cucumber into chunks.",
				"Add the olives and top with a slab of feta.",
				"Dress with olive oil and oregano.",
			},
		},
		{
			titleFormat: "%s Falafel Wraps",
			description: "Crunchy %s falafel wrapped with tahini and salad.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    30, cookTime: 15, servings: 4, calories: 540,
			staples: []recipe.Ingredient{
				ing("dried chickpeas", 2, cup),
				ing("parsley", 1, cup),
				ing("flatbread", 4, piece),
				ing("tahini", 3, tbsp),
			},
			instructions: []string{
				"Soak the chickpeas overnight and grind with parsley.",
				"Shape into balls and fry until deep brown.",
				"Wrap in flatbread with tahini and salad.",
			},
		},
		{
			titleFormat: "%s Chicken Souvlaki",
			description: "Lemon and oregano marinated %s chicken skewers.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    20, cookTime: 15, servings: 4, calories: 410,
			staples: []recipe.Ingredient{
				ing("chicken breast", 1.5, lb),
				ing("lemon juice", 0.25, cup),
				ing("olive oil", 3, tbsp),
				ing("dried oregano", 2, tsp),
			},
			instructions: []string{
				"Cube and marinate the chicken for at least 30 minutes.",
				"Thread onto skewers.",
				"Grill for 12 to 15 minutes, turning often.",
			},
		},
		{
			titleFormat: "%s Shakshuka",
			description: "Eggs poached in a spiced %s tomato and pepper sauce.",
			difficulty:  recipe.DifficultyEasy,
			prepTime:    10, cookTime: 25, servings: 4, calories: 290,
			staples: []recipe.Ingredient{
				ing("crushed tomatoes", 3, cup),
				ing("eggs", 6, piece),
				ing("red bell pepper", 2, piece),
				ing("ground cumin", 1, tsp),
				ing("feta", 0.5, cup),
			},
			instructions: []string{
				"Soften the peppers, then add the cumin and tomatoes and simmer.",
				"Make wells in the sauce and crack in the eggs.",
				"Cover until the whites set, then crumble over the feta.",
			},
			culturalNotes: "Shakshuka is eaten across North Africa and the Levant.",
		},
		{
			titleFormat: "%s Grilled Fish with Lemon",
			description: "Whole %s sea bream grilled with lemon, herbs, and olive oil.",
			difficulty:  recipe.DifficultyMedium,
			prepTime:    15, cookTime: 20, servings: 4, calories: 360,
			staples: []recipe.Ingredient{
				ing("sea bream fish", 2, lb),
				ing("lemon", 2, piece),
				ing("olive oil", 3, tbsp),
				ing("fresh oregano", 2, tbsp),
			},
			instructions: []string{
				"Score the fish and stuff with lemon slices and herbs.",
				"Brush with olive oil and season well.",
				"Grill for 8 to 10 minutes a side.",
			},
		},
	},
}
