package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite covers the domain value types
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) validRecipe() Recipe {
	return Recipe{
		Title:        "Chicken and Rice Bowl",
		Description:  "A quick bowl",
		Difficulty:   DifficultyEasy,
		PrepTime:     10,
		CookTime:     20,
		Servings:     2,
		Ingredients:  []Ingredient{{Name: "chicken", Amount: 1, Unit: MeasurementUnitPound}},
		Instructions: []string{"Cook everything."},
		Calories:     450,
		CuisineType:  "Asian",
	}
}

func (suite *RecipeTestSuite) TestRecipeValidate() {
	suite.Run("ValidRecipe_ShouldPass", func() {
		assert.NoError(suite.T(), suite.validRecipe().Validate())
	})

	suite.Run("EmptyTitle_ShouldFail", func() {
		r := suite.validRecipe()
		r.Title = "  "
		assert.ErrorIs(suite.T(), r.Validate(), ErrEmptyTitle)
	})

	suite.Run("ZeroServings_ShouldFail", func() {
		r := suite.validRecipe()
		r.Servings = 0
		assert.ErrorIs(suite.T(), r.Validate(), ErrInvalidServings)
	})

	suite.Run("NegativeTime_ShouldFail", func() {
		r := suite.validRecipe()
		r.CookTime = -1
		assert.ErrorIs(suite.T(), r.Validate(), ErrNegativeTime)
	})

	suite.Run("NoInstructions_ShouldFail", func() {
		r := suite.validRecipe()
		r.Instructions = nil
		assert.ErrorIs(suite.T(), r.Validate(), ErrNoInstructions)
	})

	suite.Run("LowercaseDifficulty_ShouldFail", func() {
		r := suite.validRecipe()
		r.Difficulty = "easy"
		assert.ErrorIs(suite.T(), r.Validate(), ErrInvalidDifficulty)
	})
}

func (suite *RecipeTestSuite) TestRecipeSerializesWithDraftKeys() {
	data, err := json.Marshal(suite.validRecipe())
	require.NoError(suite.T(), err)

	var draft Draft
	require.NoError(suite.T(), json.Unmarshal(data, &draft))

	assert.Equal(suite.T(), "Chicken and Rice Bowl", draft.Text("title"))
	prep, ok := draft.PositiveInt("prep_time")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), 10, prep)
	assert.Equal(suite.T(), "Asian", draft.Text("cuisine_type"))
	assert.NotContains(suite.T(), draft, "cultural_notes")
}

func (suite *RecipeTestSuite) TestHasIngredientMatching() {
	r := suite.validRecipe()
	assert.True(suite.T(), r.HasIngredientMatching("beef", "chicken"))
	assert.False(suite.T(), r.HasIngredientMatching("pork"))
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{" MEDIUM ", DifficultyMedium, true},
		{"Hard", DifficultyHard, true},
		{"expert", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGenerationRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, NewIngredientSearch(nil, nil, "").Validate(), ErrNoIngredients)
	assert.ErrorIs(t, NewIngredientSearch([]string{" ", ""}, nil, "").Validate(), ErrNoIngredients)
	assert.NoError(t, NewIngredientSearch([]string{"rice"}, nil, "").Validate())

	assert.ErrorIs(t, NewCuisineSearch("  ", nil, "", "").Validate(), ErrNoCuisine)
	assert.NoError(t, NewCuisineSearch("Thai", nil, "", "").Validate())

	assert.ErrorIs(t, GenerationRequest{}.Validate(), ErrUnknownKind)
}

func TestGenerationRequest_DietaryPreferencesAreASet(t *testing.T) {
	req := NewCuisineSearch("Italian", []string{"Vegetarian", "vegetarian", " gluten-free ", ""}, "", "")

	assert.Equal(t, []string{"Vegetarian", "gluten-free"}, req.DietaryPreferences)
	assert.True(t, req.WantsVegetarian())
	assert.False(t, NewCuisineSearch("Italian", []string{"keto"}, "", "").WantsVegetarian())
	assert.True(t, NewCuisineSearch("Italian", []string{"VEGAN"}, "", "").WantsVegetarian())
}

func TestGenerationRequest_LeadIngredients(t *testing.T) {
	req := NewIngredientSearch([]string{"chicken", " rice ", "broccoli"}, nil, "")
	assert.Equal(t, []string{"chicken", "rice"}, req.LeadIngredients(2))

	single := NewIngredientSearch([]string{"eggs"}, nil, "")
	assert.Equal(t, []string{"eggs"}, single.LeadIngredients(2))
}

func TestDraftAccessors(t *testing.T) {
	d := Draft{
		"title":     "  Soup ",
		"prep_time": "25 minutes",
		"cook_time": -3.0,
		"servings":  json.Number("4"),
		"calories":  "abc",
		"amount":    "1/2 cup",
		"steps":     []any{"a", 2},
		"wrong":     42.0,
	}

	assert.Equal(t, "Soup", d.Text("title"))
	assert.Equal(t, "", d.Text("wrong"))
	assert.Equal(t, "", d.Text("missing"))

	n, ok := d.PositiveInt("prep_time")
	assert.True(t, ok)
	assert.Equal(t, 25, n)

	_, ok = d.PositiveInt("cook_time")
	assert.False(t, ok)

	n, ok = d.PositiveInt("servings")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = d.PositiveInt("calories")
	assert.False(t, ok)

	f, ok := ParseNumber(d["amount"])
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-9)

	assert.Len(t, d.List("steps"), 2)
	assert.Nil(t, d.List("title"))

	_, ok = AsDraft("not an object")
	assert.False(t, ok)
	_, ok = AsDraft(map[string]any{})
	assert.True(t, ok)
}
