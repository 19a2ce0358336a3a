package generation

import (
	"encoding/json"
	"strings"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
	apperrors "github.com/alchemorsel/recipegen/pkg/errors"
)

// ExtractDrafts pulls the recipe array out of raw model text.
// A bare array is parsed directly; otherwise the span from the first '['
// to the last ']' is tried, which tolerates prose and code fences.
func ExtractDrafts(text string) ([]recipe.Draft, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewExtractionFailureError("model returned empty content", nil)
	}

	candidate := trimmed
	if !(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
		start := strings.Index(trimmed, "[")
		end := strings.LastIndex(trimmed, "]")
		if start == -1 || end <= start {
			return nil, apperrors.NewExtractionFailureError("no JSON array found in model output", nil)
		}
		candidate = trimmed[start : end+1]
	}

	var items []any
	if err := json.Unmarshal([]byte(candidate), &items); err != nil {
		return nil, apperrors.NewExtractionFailureError("model output is not a valid JSON array", err)
	}

	drafts := make([]recipe.Draft, 0, len(items))
	for _, item := range items {
		if d, ok := recipe.AsDraft(item); ok {
			drafts = append(drafts, d)
		}
	}
	if len(drafts) == 0 {
		return nil, apperrors.NewExtractionFailureError("model output contains no recipe objects", nil)
	}

	return drafts, nil
}
