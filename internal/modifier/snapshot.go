package modifier

import (
	"github.com/google/uuid"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

// Ingredient is a single entry on a recipe's ingredient list.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Step is a single preparation step.
type Step struct {
	Number      int    `json:"number"`
	Instruction string `json:"instruction"`
}

// RecipeSnapshot is the read-only recipe state a modification operates on.
// The engine never mutates it.
type RecipeSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Ingredients     []Ingredient
	Steps           []Step
	Servings        int
	Nutrition       nutrition.Vector
	PrepTimeMinutes *int
	IsPublic        bool
}

// Result is the computed outcome of a modification strategy, prior to
// persistence. Ingredients and Steps are copies of the originals; none of
// the strategies rewrites them.
type Result struct {
	Ingredients []Ingredient     `json:"ingredients"`
	Steps       []Step           `json:"steps"`
	Nutrition   nutrition.Vector `json:"nutrition"`
	Servings    int              `json:"servings"`
	Notes       string           `json:"notes"`
}

func copyIngredients(in []Ingredient) []Ingredient {
	out := make([]Ingredient, len(in))
	copy(out, in)
	return out
}

func copySteps(in []Step) []Step {
	out := make([]Step, len(in))
	copy(out, in)
	return out
}
