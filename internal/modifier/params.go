package modifier

import "errors"

// Type identifies one of the supported recipe modification strategies.
type Type string

const (
	TypeReduceCalories         Type = "reduce_calories"
	TypeIncreaseCalories       Type = "increase_calories"
	TypeIncreaseProtein        Type = "increase_protein"
	TypeIncreaseFiber          Type = "increase_fiber"
	TypePortionSize            Type = "portion_size"
	TypeIngredientSubstitution Type = "ingredient_substitution"
)

// ErrUnsupportedType is returned by Apply when it receives parameters for a
// modification type it has no strategy for. Request validation should make
// this unreachable; hitting it means an internal contract breach, so callers
// must not retry.
var ErrUnsupportedType = errors.New("unsupported modification type")

// Params is the per-strategy parameter set. Exactly one concrete params
// struct exists per modification type; the type tag is carried by the struct
// itself so parameters from one strategy cannot leak into another.
type Params interface {
	ModificationType() Type
}

// ReduceCaloriesParams configures the reduce_calories strategy. When
// TargetCalories is set it wins outright; ReductionPercentage is only
// consulted when the absolute target is absent. With neither set the target
// equals the original calories and the modification is a no-op.
type ReduceCaloriesParams struct {
	TargetCalories      *float64
	ReductionPercentage *float64
}

func (ReduceCaloriesParams) ModificationType() Type { return TypeReduceCalories }

// IncreaseCaloriesParams configures the increase_calories strategy, with the
// same absolute-over-percentage precedence as ReduceCaloriesParams.
type IncreaseCaloriesParams struct {
	TargetCalories     *float64
	IncreasePercentage *float64
}

func (IncreaseCaloriesParams) ModificationType() Type { return TypeIncreaseCalories }

// IncreaseProteinParams configures the increase_protein strategy.
type IncreaseProteinParams struct {
	TargetProtein      *float64
	IncreasePercentage *float64
}

func (IncreaseProteinParams) ModificationType() Type { return TypeIncreaseProtein }

// IncreaseFiberParams configures the increase_fiber strategy.
type IncreaseFiberParams struct {
	TargetFiber        *float64
	IncreasePercentage *float64
}

func (IncreaseFiberParams) ModificationType() Type { return TypeIncreaseFiber }

// PortionSizeParams configures the portion_size strategy. A nil NewServings
// keeps the original serving count.
type PortionSizeParams struct {
	NewServings *int
}

func (PortionSizeParams) ModificationType() Type { return TypePortionSize }

// IngredientSubstitutionParams configures the ingredient_substitution
// strategy. PreferredSubstitute falls back to a generic placeholder when
// empty.
type IngredientSubstitutionParams struct {
	OriginalIngredient  string
	PreferredSubstitute string
}

func (IngredientSubstitutionParams) ModificationType() Type { return TypeIngredientSubstitution }
