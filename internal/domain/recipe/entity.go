package recipe

import "strings"

// Recipe is a fully normalized recipe returned to callers.
// JSON keys match the draft keys the model is asked to produce, so a
// serialized Recipe is itself an acceptable Draft.
type Recipe struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Difficulty    Difficulty   `json:"difficulty"`
	PrepTime      int          `json:"prep_time"`
	CookTime      int          `json:"cook_time"`
	Servings      int          `json:"servings"`
	Ingredients   []Ingredient `json:"ingredients"`
	Instructions  []string     `json:"instructions"`
	Calories      int          `json:"calories"`
	CuisineType   string       `json:"cuisine_type"`
	CulturalNotes string       `json:"cultural_notes,omitempty"`
}

// Validate checks the invariants every returned recipe must hold
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Servings < 1 {
		return ErrInvalidServings
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return ErrNegativeTime
	}
	if r.Calories < 0 {
		return ErrNegativeCalories
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	if !r.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasIngredientMatching reports whether any ingredient name contains one of
// the given lowercase substrings
func (r Recipe) HasIngredientMatching(substrings ...string) bool {
	for _, ing := range r.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, s := range substrings {
			if strings.Contains(name, s) {
				return true
			}
		}
	}
	return false
}
