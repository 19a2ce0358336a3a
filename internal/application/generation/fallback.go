package generation

import (
	"fmt"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

// meatMarkers are lowercase substrings that disqualify a recipe for
// vegetarian requests
var meatMarkers = []string{
	"meat", "poultry", "beef", "chicken", "pork", "lamb", "turkey", "duck",
	"bacon", "pancetta", "prosciutto", "sausage", "steak", "fish", "salmon",
	"tuna", "shrimp", "prawn", "anchov",
}

// template is a static recipe. Format strings take the personalization
// (lead ingredients or cuisine name) as their only argument.
type template struct {
	titleFormat   string
	description   string
	difficulty    recipe.Difficulty
	prepTime      int
	cookTime      int
	servings      int
	calories      int
	staples       []recipe.Ingredient
	instructions  []string
	culturalNotes string
}

// render returns a fresh recipe; no slice is shared with the template
func (t template) render(personalization, cuisineType string, requested []recipe.Ingredient) recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(requested)+len(t.staples))
	ingredients = append(ingredients, requested...)
	ingredients = append(ingredients, t.staples...)

	return recipe.Recipe{
		Title:         fmt.Sprintf(t.titleFormat, personalization),
		Description:   fmt.Sprintf(t.description, personalization),
		Difficulty:    t.difficulty,
		PrepTime:      t.prepTime,
		CookTime:      t.cookTime,
		Servings:      t.servings,
		Ingredients:   ingredients,
		Instructions:  append([]string(nil), t.instructions...),
		Calories:      t.calories,
		CuisineType:   cuisineType,
		CulturalNotes: t.culturalNotes,
	}
}

// Fallback produces static recipes for a request. The result is never empty.
func Fallback(req recipe.GenerationRequest) []recipe.Recipe {
	if req.Kind == recipe.SearchByCuisine {
		return cuisineFallback(req)
	}
	return ingredientFallback(req)
}

func ingredientFallback(req recipe.GenerationRequest) []recipe.Recipe {
	lead := leadName(req)
	cuisineType := req.Cuisine
	if cuisineType == "" {
		cuisineType = defaultCuisineType
	}

	recipes := make([]recipe.Recipe, 0, len(ingredientTemplates))
	for _, t := range ingredientTemplates {
		recipes = append(recipes, t.render(lead, cuisineType, ingredientsFromNames(req.Ingredients)))
	}
	return recipes
}

func cuisineFallback(req recipe.GenerationRequest) []recipe.Recipe {
	name := titleCase(req.Cuisine)
	if name == "" {
		name = defaultCuisineType
	}

	templates, ok := cuisineTemplates[recipe.CuisineKey(req.Cuisine)]
	if !ok {
		templates = []template{genericCuisineTemplate}
	}

	vegetarian := req.WantsVegetarian()
	recipes := make([]recipe.Recipe, 0, len(templates))
	for _, t := range templates {
		r := t.render(name, name, nil)
		if vegetarian && r.HasIngredientMatching(meatMarkers...) {
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes
}
