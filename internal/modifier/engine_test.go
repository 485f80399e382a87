package modifier_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testRecipe() modifier.RecipeSnapshot {
	return modifier.RecipeSnapshot{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Maślane ziemniaki",
		Ingredients: []modifier.Ingredient{
			{Name: "ziemniaki", Amount: 500, Unit: "g"},
			{Name: "masło", Amount: 30, Unit: "g"},
		},
		Steps: []modifier.Step{
			{Number: 1, Instruction: "Ugotuj ziemniaki."},
			{Number: 2, Instruction: "Dodaj masło i wymieszaj."},
		},
		Servings:  4,
		Nutrition: nutrition.Vector{Calories: 450, Protein: 25, Fat: 15, Carbs: 50, Fiber: 8, Salt: 1.5},
	}
}

func TestReduceCaloriesAbsoluteTarget(t *testing.T) {
	recipe := testRecipe()

	result, err := modifier.Apply(recipe, modifier.ReduceCaloriesParams{
		TargetCalories: floatPtr(225),
	})
	require.NoError(t, err)

	assert.Equal(t, nutrition.Vector{
		Calories: 225, Protein: 12.5, Fat: 7.5, Carbs: 25, Fiber: 4, Salt: 0.75,
	}, result.Nutrition)
	assert.Equal(t, recipe.Ingredients, result.Ingredients)
	assert.Equal(t, recipe.Steps, result.Steps)
	assert.Equal(t, recipe.Servings, result.Servings)
	assert.Contains(t, result.Notes, "450")
	assert.Contains(t, result.Notes, "225")
}

func TestReduceCaloriesPercentage(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.ReduceCaloriesParams{
		ReductionPercentage: floatPtr(10),
	})
	require.NoError(t, err)

	// 450 * 0.9 = 405
	assert.Equal(t, 405.0, result.Nutrition.Calories)
	assert.Equal(t, nutrition.Round(25*405.0/450.0, 2), result.Nutrition.Protein)
}

func TestReduceCaloriesAbsoluteWinsOverPercentage(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.ReduceCaloriesParams{
		TargetCalories:      floatPtr(225),
		ReductionPercentage: floatPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, 225.0, result.Nutrition.Calories)
	assert.Equal(t, 12.5, result.Nutrition.Protein)
}

func TestReduceCaloriesNeitherParameterIsNoop(t *testing.T) {
	recipe := testRecipe()
	result, err := modifier.Apply(recipe, modifier.ReduceCaloriesParams{})
	require.NoError(t, err)

	assert.Equal(t, recipe.Nutrition, result.Nutrition)
	assert.Equal(t, recipe.Servings, result.Servings)
}

func TestIncreaseCalories(t *testing.T) {
	t.Run("absolute target", func(t *testing.T) {
		result, err := modifier.Apply(testRecipe(), modifier.IncreaseCaloriesParams{
			TargetCalories: floatPtr(900),
		})
		require.NoError(t, err)

		assert.Equal(t, nutrition.Vector{
			Calories: 900, Protein: 50, Fat: 30, Carbs: 100, Fiber: 16, Salt: 3,
		}, result.Nutrition)
	})

	t.Run("percentage", func(t *testing.T) {
		result, err := modifier.Apply(testRecipe(), modifier.IncreaseCaloriesParams{
			IncreasePercentage: floatPtr(20),
		})
		require.NoError(t, err)

		// 450 * 1.2 = 540
		assert.Equal(t, 540.0, result.Nutrition.Calories)
	})
}

func TestIncreaseProtein(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.IncreaseProteinParams{
		TargetProtein: floatPtr(35),
	})
	require.NoError(t, err)

	assert.Equal(t, 35.0, result.Nutrition.Protein)
	assert.Equal(t, 490.0, result.Nutrition.Calories)
	assert.Equal(t, 15.0, result.Nutrition.Fat)
	assert.Equal(t, 50.0, result.Nutrition.Carbs)
	assert.Equal(t, 8.0, result.Nutrition.Fiber)
	assert.Equal(t, 1.5, result.Nutrition.Salt)
}

func TestIncreaseProteinPercentage(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.IncreaseProteinParams{
		IncreasePercentage: floatPtr(10),
	})
	require.NoError(t, err)

	// 25 * 1.1 = 27.5, delta 2.5 -> +10 kcal
	assert.Equal(t, 27.5, result.Nutrition.Protein)
	assert.Equal(t, 460.0, result.Nutrition.Calories)
}

func TestIncreaseFiber(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.IncreaseFiberParams{
		TargetFiber: floatPtr(12),
	})
	require.NoError(t, err)

	// fiber delta 4, carb delta 6, calorie delta 12
	assert.Equal(t, 12.0, result.Nutrition.Fiber)
	assert.Equal(t, 56.0, result.Nutrition.Carbs)
	assert.Equal(t, 462.0, result.Nutrition.Calories)
	assert.Equal(t, 25.0, result.Nutrition.Protein)
	assert.Equal(t, 15.0, result.Nutrition.Fat)
	assert.Equal(t, 1.5, result.Nutrition.Salt)
}

func TestPortionSize(t *testing.T) {
	recipe := testRecipe()
	result, err := modifier.Apply(recipe, modifier.PortionSizeParams{
		NewServings: intPtr(8),
	})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Servings)
	assert.Equal(t, recipe.Nutrition, result.Nutrition)
	assert.Equal(t, recipe.Ingredients, result.Ingredients)
	assert.Equal(t, recipe.Steps, result.Steps)
}

func TestPortionSizeDefaultsToOriginal(t *testing.T) {
	recipe := testRecipe()
	result, err := modifier.Apply(recipe, modifier.PortionSizeParams{})
	require.NoError(t, err)

	assert.Equal(t, recipe.Servings, result.Servings)
}

func TestIngredientSubstitution(t *testing.T) {
	recipe := testRecipe()
	result, err := modifier.Apply(recipe, modifier.IngredientSubstitutionParams{
		OriginalIngredient:  "masło",
		PreferredSubstitute: "oliwa z oliwek",
	})
	require.NoError(t, err)

	assert.Equal(t, nutrition.Vector{
		Calories: 428, Protein: 26.3, Fat: 13.5, Carbs: 50, Fiber: 8.8, Salt: 1.5,
	}, result.Nutrition)
	// The ingredient list is never edited; only the nutrition profile moves.
	assert.Equal(t, recipe.Ingredients, result.Ingredients)
	assert.Contains(t, result.Notes, "masło")
	assert.Contains(t, result.Notes, "oliwa z oliwek")
}

func TestIngredientSubstitutionDefaultSubstitute(t *testing.T) {
	result, err := modifier.Apply(testRecipe(), modifier.IngredientSubstitutionParams{
		OriginalIngredient: "masło",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Notes, "a healthier alternative")
}

func TestApplyUnsupportedType(t *testing.T) {
	_, err := modifier.Apply(testRecipe(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, modifier.ErrUnsupportedType)
}

func TestApplyDoesNotMutateSnapshot(t *testing.T) {
	recipe := testRecipe()
	originalNutrition := recipe.Nutrition
	originalIngredients := append([]modifier.Ingredient(nil), recipe.Ingredients...)

	result, err := modifier.Apply(recipe, modifier.ReduceCaloriesParams{TargetCalories: floatPtr(100)})
	require.NoError(t, err)

	assert.Equal(t, originalNutrition, recipe.Nutrition)
	assert.Equal(t, originalIngredients, recipe.Ingredients)

	// Results own their slices
	result.Ingredients[0].Name = "changed"
	assert.Equal(t, originalIngredients[0].Name, recipe.Ingredients[0].Name)
}

func TestApplyIsDeterministic(t *testing.T) {
	recipe := testRecipe()
	params := []modifier.Params{
		modifier.ReduceCaloriesParams{TargetCalories: floatPtr(225)},
		modifier.IncreaseCaloriesParams{IncreasePercentage: floatPtr(15)},
		modifier.IncreaseProteinParams{TargetProtein: floatPtr(35)},
		modifier.IncreaseFiberParams{IncreasePercentage: floatPtr(25)},
		modifier.PortionSizeParams{NewServings: intPtr(6)},
		modifier.IngredientSubstitutionParams{OriginalIngredient: "masło"},
	}

	for _, p := range params {
		first, err := modifier.Apply(recipe, p)
		require.NoError(t, err)
		second, err := modifier.Apply(recipe, p)
		require.NoError(t, err)
		assert.Equal(t, first, second, "strategy %s should be deterministic", p.ModificationType())
	}
}

// Zero original calories is a known boundary: the ratio is NaN and the scaled
// fields propagate it unguarded.
func TestReduceCaloriesZeroOriginal(t *testing.T) {
	recipe := testRecipe()
	recipe.Nutrition = nutrition.Vector{}

	result, err := modifier.Apply(recipe, modifier.ReduceCaloriesParams{ReductionPercentage: floatPtr(50)})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Nutrition.Calories)
	assert.True(t, math.IsNaN(result.Nutrition.Protein))
}
