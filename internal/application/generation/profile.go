// Package generation turns recipe queries into normalized recipes using a
// hosted language model, with a static fallback when the model fails.
package generation

import (
	"time"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

// Profile holds the per-endpoint constants of a generation
type Profile struct {
	Kind        recipe.SearchKind
	Endpoint    string
	TargetCount int
	Timeout     time.Duration

	DefaultDifficulty recipe.Difficulty
	DefaultPrepTime   int
	DefaultCookTime   int
	DefaultServings   int
	DefaultCalories   int
}

const (
	EndpointByIngredients = "by-ingredients"
	EndpointByCuisine     = "by-cuisine"

	DefaultIngredientTimeout = 15 * time.Second
	DefaultCuisineTimeout    = 20 * time.Second

	defaultCuisineType = "International"
)

// IngredientProfile returns the ingredient search constants
func IngredientProfile(timeout time.Duration) Profile {
	if timeout <= 0 {
		timeout = DefaultIngredientTimeout
	}
	return Profile{
		Kind:              recipe.SearchByIngredients,
		Endpoint:          EndpointByIngredients,
		TargetCount:       3,
		Timeout:           timeout,
		DefaultDifficulty: recipe.DifficultyEasy,
		DefaultPrepTime:   15,
		DefaultCookTime:   25,
		DefaultServings:   4,
		DefaultCalories:   300,
	}
}

// CuisineProfile returns the cuisine search constants
func CuisineProfile(timeout time.Duration) Profile {
	if timeout <= 0 {
		timeout = DefaultCuisineTimeout
	}
	return Profile{
		Kind:              recipe.SearchByCuisine,
		Endpoint:          EndpointByCuisine,
		TargetCount:       5,
		Timeout:           timeout,
		DefaultDifficulty: recipe.DifficultyMedium,
		DefaultPrepTime:   20,
		DefaultCookTime:   30,
		DefaultServings:   4,
		DefaultCalories:   350,
	}
}
