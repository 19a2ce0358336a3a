package recipe

// GenerationResult is what a generation produced for one request
type GenerationResult struct {
	Recipes      []Recipe
	UsedFallback bool
	// ErrorNote explains why the fallback was used
	ErrorNote string
	// Cuisine echoes the requested cuisine, when any
	Cuisine string
}

// Total returns the number of recipes
func (g GenerationResult) Total() int {
	return len(g.Recipes)
}
