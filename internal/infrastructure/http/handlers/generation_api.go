// Package handlers provides HTTP handlers for the recipe generation API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
	"github.com/alchemorsel/recipegen/internal/infrastructure/http/middleware"
	"github.com/alchemorsel/recipegen/internal/ports/inbound"
	apperrors "github.com/alchemorsel/recipegen/pkg/errors"
)

// MaxRequestBodyBytes caps a search request body
const MaxRequestBodyBytes = 64 << 10

// GenerationAPIHandlers handles the AI recipe search endpoints
type GenerationAPIHandlers struct {
	service  inbound.GenerationService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewGenerationAPIHandlers creates a new handlers instance
func NewGenerationAPIHandlers(service inbound.GenerationService, logger *zap.Logger) *GenerationAPIHandlers {
	return &GenerationAPIHandlers{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("handlers"),
	}
}

// IngredientSearchRequest is the body of POST /api/v1/ai/recipes/by-ingredients
type IngredientSearchRequest struct {
	Ingredients        []string `json:"ingredients" validate:"required,min=1"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
	CuisineType        string   `json:"cuisine_type,omitempty"`
}

// CuisineSearchRequest is the body of POST /api/v1/ai/recipes/by-cuisine
type CuisineSearchRequest struct {
	Cuisine            string   `json:"cuisine" validate:"required"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
	MealType           string   `json:"meal_type,omitempty"`
	Difficulty         string   `json:"difficulty,omitempty"`
}

// IngredientSearchResponse is the body returned by the ingredient endpoint
type IngredientSearchResponse struct {
	Recipes  []recipe.Recipe `json:"recipes"`
	Fallback bool            `json:"fallback,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// CuisineSearchResponse is the body returned by the cuisine endpoint
type CuisineSearchResponse struct {
	Recipes  []recipe.Recipe `json:"recipes"`
	Cuisine  string          `json:"cuisine"`
	Total    int             `json:"total"`
	Fallback bool            `json:"fallback,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// ByIngredients handles POST /api/v1/ai/recipes/by-ingredients
func (h *GenerationAPIHandlers) ByIngredients(w http.ResponseWriter, r *http.Request) {
	var req IngredientSearchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewInvalidRequestError("Ingredients list is required").WithCause(err))
		return
	}

	result, err := h.service.Generate(r.Context(),
		recipe.NewIngredientSearch(req.Ingredients, req.DietaryPreferences, req.CuisineType))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, IngredientSearchResponse{
		Recipes:  nonNil(result.Recipes),
		Fallback: result.UsedFallback,
		Error:    result.ErrorNote,
	})
}

// ByCuisine handles POST /api/v1/ai/recipes/by-cuisine
func (h *GenerationAPIHandlers) ByCuisine(w http.ResponseWriter, r *http.Request) {
	var req CuisineSearchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, apperrors.NewInvalidRequestError("Cuisine is required").WithCause(err))
		return
	}

	result, err := h.service.Generate(r.Context(),
		recipe.NewCuisineSearch(req.Cuisine, req.DietaryPreferences, req.MealType, req.Difficulty))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, CuisineSearchResponse{
		Recipes:  nonNil(result.Recipes),
		Cuisine:  result.Cuisine,
		Total:    result.Total(),
		Fallback: result.UsedFallback,
		Error:    result.ErrorNote,
	})
}

func (h *GenerationAPIHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, apperrors.NewPayloadTooLargeError(tooLarge.Limit))
			return false
		}
		h.writeError(w, r, apperrors.NewInvalidRequestError("Invalid JSON payload").WithCause(err))
		return false
	}
	return true
}

func (h *GenerationAPIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.StatusCode()
	}

	h.logger.Info("Request rejected",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status_code", status),
		zap.Error(err),
	)

	h.writeJSON(w, status, apperrors.ToErrorResponse(err))
}

func (h *GenerationAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func nonNil(recipes []recipe.Recipe) []recipe.Recipe {
	if recipes == nil {
		return []recipe.Recipe{}
	}
	return recipes
}
