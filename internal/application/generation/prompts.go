package generation

import (
	"fmt"
	"strings"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

// Prompt is the instruction pair sent to the model
type Prompt struct {
	System string
	User   string
}

const systemPrompt = `You are a professional chef and recipe developer.
Respond with only a JSON array of recipe objects.
Do not include explanations, markdown, or code fences.`

const draftShape = `{"title": string, "description": string, "difficulty": "Easy" | "Medium" | "Hard", "prep_time": minutes, "cook_time": minutes, "servings": number, "ingredients": [{"name": string, "amount": number, "unit": string}], "instructions": [string], "calories": number per serving, "cuisine_type": string`

// BuildPrompt renders the instructions for one request. It is deterministic.
func BuildPrompt(req recipe.GenerationRequest, profile Profile) Prompt {
	var user string
	if req.Kind == recipe.SearchByCuisine {
		user = buildCuisinePrompt(req, profile)
	} else {
		user = buildIngredientPrompt(req, profile)
	}
	return Prompt{System: systemPrompt, User: user}
}

func buildIngredientPrompt(req recipe.GenerationRequest, profile Profile) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create %d distinct recipes using these ingredients: %s.\n",
		profile.TargetCount, strings.Join(req.Ingredients, ", ")))
	prompt.WriteString("Use only the listed ingredients plus common pantry staples (salt, pepper, oil, water).\n")

	writeConstraints(&prompt, req)

	prompt.WriteString(fmt.Sprintf("\nReturn a JSON array of exactly %d objects. Each object must have these fields:\n", profile.TargetCount))
	prompt.WriteString(draftShape + "}\n")

	return prompt.String()
}

func buildCuisinePrompt(req recipe.GenerationRequest, profile Profile) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create %d authentic %s recipes.\n", profile.TargetCount, req.Cuisine))
	prompt.WriteString("Favor traditional dishes and techniques of this cuisine.\n")

	writeConstraints(&prompt, req)

	prompt.WriteString(fmt.Sprintf("\nReturn a JSON array of exactly %d objects. Each object must have these fields:\n", profile.TargetCount))
	prompt.WriteString(draftShape + `, "cultural_notes": string}` + "\n")

	return prompt.String()
}

// writeConstraints puts each optional constraint on its own directive line
func writeConstraints(prompt *strings.Builder, req recipe.GenerationRequest) {
	if len(req.DietaryPreferences) == 0 && req.MealType == "" && req.Difficulty == "" &&
		(req.Kind == recipe.SearchByCuisine || req.Cuisine == "") {
		return
	}

	prompt.WriteString("\nConstraints:\n")
	if len(req.DietaryPreferences) > 0 {
		prompt.WriteString(fmt.Sprintf("- Dietary preferences: %s\n", strings.Join(req.DietaryPreferences, ", ")))
	}
	if req.Kind == recipe.SearchByIngredients && req.Cuisine != "" {
		prompt.WriteString(fmt.Sprintf("- Cuisine: %s\n", req.Cuisine))
	}
	if req.MealType != "" {
		prompt.WriteString(fmt.Sprintf("- Meal type: %s\n", req.MealType))
	}
	if req.Difficulty != "" {
		prompt.WriteString(fmt.Sprintf("- Difficulty: %s\n", req.Difficulty))
	}
}
