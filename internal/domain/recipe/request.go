package recipe

import "strings"

// SearchKind identifies which endpoint shape a request came from
type SearchKind string

const (
	SearchByIngredients SearchKind = "ingredients"
	SearchByCuisine     SearchKind = "cuisine"
)

// GenerationRequest is an immutable, cleaned query for one generation.
// Build it with NewIngredientSearch or NewCuisineSearch.
type GenerationRequest struct {
	Kind               SearchKind
	Ingredients        []string
	Cuisine            string
	DietaryPreferences []string
	MealType           string
	Difficulty         string
}

// NewIngredientSearch builds a request for the ingredient endpoint.
// Blank ingredients are dropped; cuisine is optional.
func NewIngredientSearch(ingredients, dietary []string, cuisine string) GenerationRequest {
	return GenerationRequest{
		Kind:               SearchByIngredients,
		Ingredients:        cleanList(ingredients),
		Cuisine:            strings.TrimSpace(cuisine),
		DietaryPreferences: dedupeFold(dietary),
	}
}

// NewCuisineSearch builds a request for the cuisine endpoint
func NewCuisineSearch(cuisine string, dietary []string, mealType, difficulty string) GenerationRequest {
	return GenerationRequest{
		Kind:               SearchByCuisine,
		Cuisine:            strings.TrimSpace(cuisine),
		DietaryPreferences: dedupeFold(dietary),
		MealType:           strings.TrimSpace(mealType),
		Difficulty:         strings.TrimSpace(difficulty),
	}
}

// Validate checks the single required field of each endpoint
func (r GenerationRequest) Validate() error {
	switch r.Kind {
	case SearchByIngredients:
		if len(r.Ingredients) == 0 {
			return ErrNoIngredients
		}
	case SearchByCuisine:
		if r.Cuisine == "" {
			return ErrNoCuisine
		}
	default:
		return ErrUnknownKind
	}
	return nil
}

// WantsVegetarian reports whether the dietary preferences exclude meat
func (r GenerationRequest) WantsVegetarian() bool {
	for _, p := range r.DietaryPreferences {
		switch strings.ToLower(p) {
		case "vegetarian", "vegan":
			return true
		}
	}
	return false
}

// LeadIngredients returns at most n requested ingredients
func (r GenerationRequest) LeadIngredients(n int) []string {
	if len(r.Ingredients) < n {
		n = len(r.Ingredients)
	}
	return r.Ingredients[:n]
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// dedupeFold treats preferences as a set, keeping first spelling and order
func dedupeFold(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range cleanList(items) {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
