// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

// GenerationService turns a recipe query into recipes.
// HTTP handlers and other driving adapters use this port.
type GenerationService interface {
	// Generate returns an error only when the request is invalid. Every
	// other failure is absorbed and reported through the result.
	Generate(ctx context.Context, req recipe.GenerationRequest) (*recipe.GenerationResult, error)
}
