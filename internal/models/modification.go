package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

// RecipeModification is the persisted form of a modification result. Rows are
// insert-only: a record is created once per accepted request, never updated,
// and removed only when the owner explicitly deletes it.
type RecipeModification struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	RecipeID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ModificationType string           `gorm:"size:50;not null" json:"modification_type"`
	Ingredients      JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps            JSONBSteps       `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Servings         int              `gorm:"not null;default:1" json:"servings"`
	Notes            string           `gorm:"type:text" json:"notes"`
	Calories         float64          `gorm:"type:float" json:"calories"`
	Protein          float64          `gorm:"type:float" json:"protein"`
	Fat              float64          `gorm:"type:float" json:"fat"`
	Carbs            float64          `gorm:"type:float" json:"carbs"`
	Fiber            float64          `gorm:"type:float" json:"fiber"`
	Salt             float64          `gorm:"type:float" json:"salt"`
}

func (RecipeModification) TableName() string {
	return "recipe_modifications"
}

// Nutrition returns the modified per-serving nutrition values as a vector.
func (m *RecipeModification) Nutrition() nutrition.Vector {
	return nutrition.Vector{
		Calories: m.Calories,
		Protein:  m.Protein,
		Fat:      m.Fat,
		Carbs:    m.Carbs,
		Fiber:    m.Fiber,
		Salt:     m.Salt,
	}
}

// SetResult copies an engine result onto the record's payload columns.
func (m *RecipeModification) SetResult(res modifier.Result) {
	m.Ingredients = JSONBIngredients(res.Ingredients)
	m.Steps = JSONBSteps(res.Steps)
	m.Servings = res.Servings
	m.Notes = res.Notes
	m.Calories = res.Nutrition.Calories
	m.Protein = res.Nutrition.Protein
	m.Fat = res.Nutrition.Fat
	m.Carbs = res.Nutrition.Carbs
	m.Fiber = res.Nutrition.Fiber
	m.Salt = res.Nutrition.Salt
}
