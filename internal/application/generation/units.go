package generation

import (
	"strings"
	"unicode"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
)

// unitRule matches substrings anywhere in the name, and words only as
// whole words (so "oil" does not hit "boiled")
type unitRule struct {
	substrings []string
	words      []string
	unit       recipe.MeasurementUnit
}

// First matching rule wins. Liquids come before proteins so that
// "chicken broth" stays in cups.
var unitRules = []unitRule{
	{
		substrings: []string{"sauce", "vinegar"},
		words:      []string{"oil", "oils"},
		unit:       recipe.MeasurementUnitTablespoon,
	},
	{
		substrings: []string{"salt", "pepper", "spice"},
		unit:       recipe.MeasurementUnitTeaspoon,
	},
	{
		substrings: []string{"water", "milk", "broth", "juice", "stock"},
		unit:       recipe.MeasurementUnitCup,
	},
	{
		substrings: []string{
			"meat", "poultry", "fish",
			"chicken", "beef", "pork", "lamb", "mutton", "veal", "venison",
			"turkey", "duck", "bacon", "sausage", "chorizo",
			"pancetta", "prosciutto", "salami", "steak", "brisket", "mince",
			"salmon", "tuna", "trout", "halibut", "tilapia", "mackerel",
			"sardine", "anchov", "shrimp", "prawn", "lobster", "scallop",
			"mussel", "clam", "squid", "crab",
		},
		words: []string{"ham", "cod", "ribs"},
		unit:  recipe.MeasurementUnitPound,
	},
	{
		substrings: []string{"egg"},
		unit:       recipe.MeasurementUnitPiece,
	},
}

func (r unitRule) matches(lower string, words []string) bool {
	for _, s := range r.substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	for _, w := range r.words {
		for _, candidate := range words {
			if candidate == w {
				return true
			}
		}
	}
	return false
}

// UnitFor picks a plausible unit for an ingredient name
func UnitFor(name string) recipe.MeasurementUnit {
	lower := strings.ToLower(name)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, rule := range unitRules {
		if rule.matches(lower, words) {
			return rule.unit
		}
	}
	return recipe.MeasurementUnitCup
}

// ingredientsFromNames builds one unit of each named ingredient
func ingredientsFromNames(names []string) []recipe.Ingredient {
	out := make([]recipe.Ingredient, 0, len(names))
	for _, name := range names {
		out = append(out, recipe.Ingredient{Name: name, Amount: 1, Unit: UnitFor(name)})
	}
	return out
}
