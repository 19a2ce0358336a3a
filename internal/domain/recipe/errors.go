package recipe

import "errors"

// Domain errors for generation requests and recipes

var (
	// Request validation errors
	ErrNoIngredients = errors.New("ingredients list is required")
	ErrNoCuisine     = errors.New("cuisine is required")
	ErrUnknownKind   = errors.New("unknown search kind")

	// Recipe invariant violations
	ErrEmptyTitle        = errors.New("recipe title is required")
	ErrInvalidServings   = errors.New("servings must be greater than 0")
	ErrNegativeTime      = errors.New("preparation and cooking times cannot be negative")
	ErrNegativeCalories  = errors.New("calories cannot be negative")
	ErrNoInstructions    = errors.New("recipe must have at least one instruction")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
)
