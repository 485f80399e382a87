package modifier

import (
	"fmt"
	"math"
	"strconv"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

// Nutrition constants used by the deterministic placeholder strategies. They
// are fixed stand-ins for an eventual AI-computed adjustment and must stay
// exactly as they are for compatibility with previously stored records.
const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 2
	carbsPerGramFiber      = 1.5

	substitutionCaloriesFactor = 0.95
	substitutionProteinFactor  = 1.05
	substitutionFatFactor      = 0.90
	substitutionFiberFactor    = 1.10

	defaultSubstitute = "a healthier alternative"
)

// Apply runs the strategy matching the parameter type against the recipe
// snapshot. Each strategy is pure: identical inputs produce identical
// results, and the snapshot is never mutated. Parameters outside the known
// set return ErrUnsupportedType and no partial result.
func Apply(recipe RecipeSnapshot, params Params) (Result, error) {
	switch p := params.(type) {
	case ReduceCaloriesParams:
		return reduceCalories(recipe, p), nil
	case IncreaseCaloriesParams:
		return increaseCalories(recipe, p), nil
	case IncreaseProteinParams:
		return increaseProtein(recipe, p), nil
	case IncreaseFiberParams:
		return increaseFiber(recipe, p), nil
	case PortionSizeParams:
		return portionSize(recipe, p), nil
	case IngredientSubstitutionParams:
		return substituteIngredient(recipe, p), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeTag(params))
	}
}

func typeTag(params Params) string {
	if params == nil {
		return "<nil>"
	}
	return string(params.ModificationType())
}

// reduceCalories scales the whole nutrition vector down to a calorie target.
// The absolute target wins over the percentage; with neither set the target
// is the original value. A zero-calorie original yields a NaN ratio that
// propagates unguarded.
func reduceCalories(recipe RecipeSnapshot, params ReduceCaloriesParams) Result {
	orig := recipe.Nutrition

	target := orig.Calories
	if params.TargetCalories != nil {
		target = *params.TargetCalories
	} else if params.ReductionPercentage != nil {
		target = math.Round(orig.Calories * (1 - *params.ReductionPercentage/100))
	}

	return scaledToTarget(recipe, orig, target,
		fmt.Sprintf("Reduced calories from %s to %s kcal per serving; all other nutrients scaled proportionally.",
			formatAmount(orig.Calories), formatAmount(target)))
}

// increaseCalories mirrors reduceCalories in the other direction.
func increaseCalories(recipe RecipeSnapshot, params IncreaseCaloriesParams) Result {
	orig := recipe.Nutrition

	target := orig.Calories
	if params.TargetCalories != nil {
		target = *params.TargetCalories
	} else if params.IncreasePercentage != nil {
		target = math.Round(orig.Calories * (1 + *params.IncreasePercentage/100))
	}

	return scaledToTarget(recipe, orig, target,
		fmt.Sprintf("Increased calories from %s to %s kcal per serving; all other nutrients scaled proportionally.",
			formatAmount(orig.Calories), formatAmount(target)))
}

// scaledToTarget applies the calorie ratio to the remaining nutrients and
// pins calories exactly to the resolved target rather than re-deriving them
// from the rounded ratio.
func scaledToTarget(recipe RecipeSnapshot, orig nutrition.Vector, target float64, notes string) Result {
	vec := nutrition.Scale(orig, target/orig.Calories)
	vec.Calories = target

	return Result{
		Ingredients: copyIngredients(recipe.Ingredients),
		Steps:       copySteps(recipe.Steps),
		Nutrition:   vec,
		Servings:    recipe.Servings,
		Notes:       notes,
	}
}

// increaseProtein raises protein to the target and adds 4 kcal per added
// gram. No other macro moves; the added protein is assumed to come from a
// lean source.
func increaseProtein(recipe RecipeSnapshot, params IncreaseProteinParams) Result {
	orig := recipe.Nutrition

	target := orig.Protein
	if params.TargetProtein != nil {
		target = *params.TargetProtein
	} else if params.IncreasePercentage != nil {
		target = nutrition.Round(orig.Protein*(1+*params.IncreasePercentage/100), 1)
	}

	delta := target - orig.Protein
	calorieDelta := math.Round(delta * caloriesPerGramProtein)

	vec := orig
	vec.Protein = target
	vec.Calories = orig.Calories + calorieDelta

	return Result{
		Ingredients: copyIngredients(recipe.Ingredients),
		Steps:       copySteps(recipe.Steps),
		Nutrition:   vec,
		Servings:    recipe.Servings,
		Notes: fmt.Sprintf("Increased protein from %s g to %s g per serving, adding %s kcal.",
			formatAmount(orig.Protein), formatAmount(target), formatAmount(calorieDelta)),
	}
}

// increaseFiber raises fiber to the target. Fiber-rich foods carry extra
// carbohydrate mass, so carbs grow by 1.5 g per added gram of fiber and
// calories by 2 kcal per added gram of carbs.
func increaseFiber(recipe RecipeSnapshot, params IncreaseFiberParams) Result {
	orig := recipe.Nutrition

	target := orig.Fiber
	if params.TargetFiber != nil {
		target = *params.TargetFiber
	} else if params.IncreasePercentage != nil {
		target = nutrition.Round(orig.Fiber*(1+*params.IncreasePercentage/100), 1)
	}

	fiberDelta := target - orig.Fiber
	carbDelta := nutrition.Round(fiberDelta*carbsPerGramFiber, 1)
	calorieDelta := math.Round(carbDelta * caloriesPerGramCarbs)

	vec := orig
	vec.Fiber = target
	vec.Carbs = orig.Carbs + carbDelta
	vec.Calories = orig.Calories + calorieDelta

	return Result{
		Ingredients: copyIngredients(recipe.Ingredients),
		Steps:       copySteps(recipe.Steps),
		Nutrition:   vec,
		Servings:    recipe.Servings,
		Notes: fmt.Sprintf("Increased fiber from %s g to %s g per serving; carbs and calories adjusted for the fiber source.",
			formatAmount(orig.Fiber), formatAmount(target)),
	}
}

// portionSize replaces the stated serving count and nothing else. Per-serving
// nutrition and ingredient amounts stay as they are; quantity rescaling is
// deliberately not performed here.
func portionSize(recipe RecipeSnapshot, params PortionSizeParams) Result {
	servings := recipe.Servings
	if params.NewServings != nil {
		servings = *params.NewServings
	}

	return Result{
		Ingredients: copyIngredients(recipe.Ingredients),
		Steps:       copySteps(recipe.Steps),
		Nutrition:   recipe.Nutrition,
		Servings:    servings,
		Notes: fmt.Sprintf("Changed portion size from %d to %d servings; per-serving nutrition is unchanged.",
			recipe.Servings, servings),
	}
}

// substituteIngredient applies fixed multipliers standing in for an
// AI-computed substitution. The ingredient list itself is returned verbatim;
// only the nutrition profile moves.
func substituteIngredient(recipe RecipeSnapshot, params IngredientSubstitutionParams) Result {
	orig := recipe.Nutrition

	substitute := params.PreferredSubstitute
	if substitute == "" {
		substitute = defaultSubstitute
	}

	vec := orig
	vec.Calories = math.Round(orig.Calories * substitutionCaloriesFactor)
	vec.Protein = nutrition.Round(orig.Protein*substitutionProteinFactor, 1)
	vec.Fat = nutrition.Round(orig.Fat*substitutionFatFactor, 1)
	vec.Fiber = nutrition.Round(orig.Fiber*substitutionFiberFactor, 1)

	return Result{
		Ingredients: copyIngredients(recipe.Ingredients),
		Steps:       copySteps(recipe.Steps),
		Nutrition:   vec,
		Servings:    recipe.Servings,
		Notes: fmt.Sprintf("Substituted %s with %s; nutrition profile adjusted for the swap.",
			params.OriginalIngredient, substitute),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
