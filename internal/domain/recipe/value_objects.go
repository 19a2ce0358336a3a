package recipe

import (
	"errors"
	"strings"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents an ingredient line of a generated recipe
type Ingredient struct {
	Name   string          `json:"name"`
	Amount float64         `json:"amount"`
	Unit   MeasurementUnit `json:"unit"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("ingredient name is required")
	}
	if i.Amount < 0 {
		return errors.New("ingredient amount cannot be negative")
	}
	return nil
}

// MeasurementUnit represents units of measurement
type MeasurementUnit string

const (
	MeasurementUnitTeaspoon   MeasurementUnit = "teaspoon"
	MeasurementUnitTablespoon MeasurementUnit = "tablespoon"
	MeasurementUnitCup        MeasurementUnit = "cup"
	MeasurementUnitPound      MeasurementUnit = "pound"
	MeasurementUnitPiece      MeasurementUnit = "piece"
	MeasurementUnitClove      MeasurementUnit = "clove"
	MeasurementUnitGram       MeasurementUnit = "gram"
)

// Difficulty represents recipe difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty matches a difficulty case-insensitively
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}

// IsValid reports whether d is one of the known levels
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CuisineType represents cuisines with curated fallback recipes
type CuisineType string

const (
	CuisineTypeItalian       CuisineType = "italian"
	CuisineTypeFrench        CuisineType = "french"
	CuisineTypeChinese       CuisineType = "chinese"
	CuisineTypeJapanese      CuisineType = "japanese"
	CuisineTypeIndian        CuisineType = "indian"
	CuisineTypeMexican       CuisineType = "mexican"
	CuisineTypeMediterranean CuisineType = "mediterranean"
	CuisineTypeThai          CuisineType = "thai"
)

// CuisineKey folds a free-form cuisine name to a lookup key
func CuisineKey(name string) CuisineType {
	return CuisineType(strings.ToLower(strings.TrimSpace(name)))
}
