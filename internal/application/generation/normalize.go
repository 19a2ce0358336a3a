package generation

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

var genericInstructions = []string{
	"Prepare and measure all ingredients.",
	"Cook the ingredients together over medium heat, stirring occasionally, until done.",
	"Season to taste and serve warm.",
}

// Normalize maps every draft to a complete recipe, preserving order.
// It never fails: each missing or malformed field gets a default.
func Normalize(drafts []recipe.Draft, req recipe.GenerationRequest, profile Profile) []recipe.Recipe {
	recipes := make([]recipe.Recipe, 0, len(drafts))
	for i, d := range drafts {
		recipes = append(recipes, NormalizeDraft(d, i, req, profile))
	}
	return recipes
}

// NormalizeDraft normalizes the draft at position index (0-based)
func NormalizeDraft(d recipe.Draft, index int, req recipe.GenerationRequest, profile Profile) recipe.Recipe {
	r := recipe.Recipe{
		Title:        d.Text("title"),
		Description:  d.Text("description"),
		Difficulty:   profile.DefaultDifficulty,
		PrepTime:     intOr(d, "prep_time", profile.DefaultPrepTime),
		CookTime:     intOr(d, "cook_time", profile.DefaultCookTime),
		Servings:     intOr(d, "servings", profile.DefaultServings),
		Ingredients:  normalizeIngredients(d.List("ingredients")),
		Instructions: normalizeInstructions(d["instructions"]),
		Calories:     intOr(d, "calories", profile.DefaultCalories),
		CuisineType:  d.Text("cuisine_type"),
	}

	if r.Title == "" {
		r.Title = defaultTitle(req, index)
	}
	if r.Description == "" {
		r.Description = defaultDescription(req)
	}
	if diff, ok := recipe.ParseDifficulty(d.Text("difficulty")); ok {
		r.Difficulty = diff
	}
	if len(r.Ingredients) == 0 {
		r.Ingredients = ingredientsFromNames(req.Ingredients)
	}
	if len(r.Instructions) == 0 {
		r.Instructions = append([]string(nil), genericInstructions...)
	}
	if r.CuisineType == "" {
		r.CuisineType = req.Cuisine
	}
	if r.CuisineType == "" {
		r.CuisineType = defaultCuisineType
	}
	if profile.Kind == recipe.SearchByCuisine {
		r.CulturalNotes = d.Text("cultural_notes")
	}

	return r
}

func intOr(d recipe.Draft, key string, fallback int) int {
	if n, ok := d.PositiveInt(key); ok {
		return n
	}
	return fallback
}

func normalizeIngredients(items []any) []recipe.Ingredient {
	out := make([]recipe.Ingredient, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if name := strings.TrimSpace(v); name != "" {
				out = append(out, recipe.Ingredient{Name: name, Amount: 1, Unit: UnitFor(name)})
			}
		default:
			d, ok := recipe.AsDraft(v)
			if !ok {
				continue
			}
			name := d.Text("name")
			if name == "" {
				continue
			}
			ing := recipe.Ingredient{Name: name, Amount: 1, Unit: recipe.MeasurementUnit(d.Text("unit"))}
			if amount, ok := recipe.ParseNumber(d["amount"]); ok && amount > 0 {
				ing.Amount = amount
			}
			if ing.Unit == "" {
				ing.Unit = UnitFor(name)
			}
			out = append(out, ing)
		}
	}
	return out
}

// normalizeInstructions accepts a list of steps or a single multi-line string
func normalizeInstructions(v any) []string {
	var raw []any
	switch x := v.(type) {
	case []any:
		raw = x
	case string:
		for _, line := range strings.Split(x, "\n") {
			raw = append(raw, line)
		}
	}

	steps := make([]string, 0, len(raw))
	for _, item := range raw {
		var step string
		switch s := item.(type) {
		case string:
			step = s
		default:
			if d, ok := recipe.AsDraft(s); ok {
				step = firstText(d, "instruction", "description", "text", "step")
			}
		}
		if step = strings.TrimSpace(step); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

func firstText(d recipe.Draft, keys ...string) string {
	for _, k := range keys {
		if s := d.Text(k); s != "" {
			return s
		}
	}
	return ""
}

// titleCase builds a fresh caser per call; casers are stateful
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// leadName joins up to two request ingredients, or falls back to the cuisine
func leadName(req recipe.GenerationRequest) string {
	if lead := req.LeadIngredients(2); len(lead) > 0 {
		names := make([]string, len(lead))
		for i, name := range lead {
			names[i] = titleCase(name)
		}
		return strings.Join(names, " and ")
	}
	if req.Cuisine != "" {
		return titleCase(req.Cuisine)
	}
	return defaultCuisineType
}

func defaultTitle(req recipe.GenerationRequest, index int) string {
	return fmt.Sprintf("%s Recipe %d", leadName(req), index+1)
}

func defaultDescription(req recipe.GenerationRequest) string {
	if req.Kind == recipe.SearchByCuisine {
		return fmt.Sprintf("A traditional %s dish.", titleCase(req.Cuisine))
	}
	return fmt.Sprintf("A delicious recipe made with %s.", strings.Join(req.Ingredients, ", "))
}
