package types

import (
	"fmt"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
)

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title           string                `json:"title" binding:"required"`
	Description     string                `json:"description"`
	Category        string                `json:"category"`
	ImageURL        string                `json:"image_url"`
	Ingredients     []modifier.Ingredient `json:"ingredients" binding:"required"`
	Steps           []modifier.Step       `json:"steps" binding:"required"`
	Servings        int                   `json:"servings" binding:"required,min=1,max=100"`
	PrepTimeMinutes *int                  `json:"prep_time_minutes"`
	IsPublic        bool                  `json:"is_public"`
	Calories        float64               `json:"calories"`
	Protein         float64               `json:"protein"`
	Fat             float64               `json:"fat"`
	Carbs           float64               `json:"carbs"`
	Fiber           float64               `json:"fiber"`
	Salt            float64               `json:"salt"`
}

// UpdateRecipeRequest represents the request body for updating a recipe
type UpdateRecipeRequest struct {
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Category        string                `json:"category"`
	ImageURL        string                `json:"image_url"`
	Ingredients     []modifier.Ingredient `json:"ingredients"`
	Steps           []modifier.Step       `json:"steps"`
	Servings        *int                  `json:"servings"`
	PrepTimeMinutes *int                  `json:"prep_time_minutes"`
	IsPublic        *bool                 `json:"is_public"`
	Calories        *float64              `json:"calories"`
	Protein         *float64              `json:"protein"`
	Fat             *float64              `json:"fat"`
	Carbs           *float64              `json:"carbs"`
	Fiber           *float64              `json:"fiber"`
	Salt            *float64              `json:"salt"`
}

// ModifyRecipeRequest is the request body for creating a recipe modification.
// The wire format is a tagged union: modification_type selects the strategy
// and only the matching parameter fields are consulted.
type ModifyRecipeRequest struct {
	ModificationType    string   `json:"modification_type" binding:"required"`
	TargetCalories      *float64 `json:"target_calories,omitempty"`
	ReductionPercentage *float64 `json:"reduction_percentage,omitempty"`
	IncreasePercentage  *float64 `json:"increase_percentage,omitempty"`
	TargetProtein       *float64 `json:"target_protein,omitempty"`
	TargetFiber         *float64 `json:"target_fiber,omitempty"`
	NewServings         *int     `json:"new_servings,omitempty"`
	OriginalIngredient  string   `json:"original_ingredient,omitempty"`
	PreferredSubstitute string   `json:"preferred_substitute,omitempty"`
}

// Validate enforces the documented parameter ranges before the request is
// allowed anywhere near the modification engine: calorie targets 0-10000,
// percentages 1-100, servings 1-100, and a named ingredient for
// substitutions. The engine itself assumes these hold.
func (r *ModifyRecipeRequest) Validate() error {
	switch modifier.Type(r.ModificationType) {
	case modifier.TypeReduceCalories:
		if err := validateCalorieTarget(r.TargetCalories); err != nil {
			return err
		}
		return validatePercentage("reduction_percentage", r.ReductionPercentage)
	case modifier.TypeIncreaseCalories:
		if err := validateCalorieTarget(r.TargetCalories); err != nil {
			return err
		}
		return validatePercentage("increase_percentage", r.IncreasePercentage)
	case modifier.TypeIncreaseProtein:
		if r.TargetProtein != nil && *r.TargetProtein < 0 {
			return fmt.Errorf("target_protein must not be negative")
		}
		return validatePercentage("increase_percentage", r.IncreasePercentage)
	case modifier.TypeIncreaseFiber:
		if r.TargetFiber != nil && *r.TargetFiber < 0 {
			return fmt.Errorf("target_fiber must not be negative")
		}
		return validatePercentage("increase_percentage", r.IncreasePercentage)
	case modifier.TypePortionSize:
		if r.NewServings != nil && (*r.NewServings < 1 || *r.NewServings > 100) {
			return fmt.Errorf("new_servings must be between 1 and 100")
		}
		return nil
	case modifier.TypeIngredientSubstitution:
		if r.OriginalIngredient == "" {
			return fmt.Errorf("original_ingredient is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown modification_type %q", r.ModificationType)
	}
}

// Params converts the validated wire request into the engine's typed
// parameter union.
func (r *ModifyRecipeRequest) Params() (modifier.Params, error) {
	switch modifier.Type(r.ModificationType) {
	case modifier.TypeReduceCalories:
		return modifier.ReduceCaloriesParams{
			TargetCalories:      r.TargetCalories,
			ReductionPercentage: r.ReductionPercentage,
		}, nil
	case modifier.TypeIncreaseCalories:
		return modifier.IncreaseCaloriesParams{
			TargetCalories:     r.TargetCalories,
			IncreasePercentage: r.IncreasePercentage,
		}, nil
	case modifier.TypeIncreaseProtein:
		return modifier.IncreaseProteinParams{
			TargetProtein:      r.TargetProtein,
			IncreasePercentage: r.IncreasePercentage,
		}, nil
	case modifier.TypeIncreaseFiber:
		return modifier.IncreaseFiberParams{
			TargetFiber:        r.TargetFiber,
			IncreasePercentage: r.IncreasePercentage,
		}, nil
	case modifier.TypePortionSize:
		return modifier.PortionSizeParams{
			NewServings: r.NewServings,
		}, nil
	case modifier.TypeIngredientSubstitution:
		return modifier.IngredientSubstitutionParams{
			OriginalIngredient:  r.OriginalIngredient,
			PreferredSubstitute: r.PreferredSubstitute,
		}, nil
	default:
		return nil, fmt.Errorf("unknown modification_type %q", r.ModificationType)
	}
}

func validateCalorieTarget(target *float64) error {
	if target != nil && (*target < 0 || *target > 10000) {
		return fmt.Errorf("target_calories must be between 0 and 10000")
	}
	return nil
}

func validatePercentage(field string, pct *float64) error {
	if pct != nil && (*pct < 1 || *pct > 100) {
		return fmt.Errorf("%s must be between 1 and 100", field)
	}
	return nil
}

// CreateCollectionRequest represents the request body for creating a collection
type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// AddCollectionItemRequest represents the request body for adding a recipe to a collection
type AddCollectionItemRequest struct {
	RecipeID string `json:"recipe_id" binding:"required,uuid"`
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	Username          string  `json:"username"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	PrivacyLevel      *string `json:"privacy_level"`
}

// UpdateDietaryRequest replaces the caller's dietary preferences and allergens
type UpdateDietaryRequest struct {
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergens          []string `json:"allergens"`
}
