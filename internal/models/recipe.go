package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/nutrition"
)

// JSONBIngredients stores a structured ingredient list in a JSONB column.
type JSONBIngredients []modifier.Ingredient

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBSteps stores the ordered preparation steps in a JSONB column.
type JSONBSteps []modifier.Step

// Value implements the driver.Valuer interface
func (a JSONBSteps) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBSteps) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBSteps{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	Title           string           `gorm:"size:255;not null" json:"title"`
	Description     string           `gorm:"type:text" json:"description"`
	Category        string           `gorm:"size:50" json:"category"`
	ImageURL        string           `gorm:"size:255" json:"image_url"`
	Ingredients     JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps           JSONBSteps       `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Servings        int              `gorm:"not null;default:1" json:"servings"`
	PrepTimeMinutes *int             `json:"prep_time_minutes,omitempty"`
	IsPublic        bool             `gorm:"not null;default:false" json:"is_public"`
	Calories        float64          `gorm:"type:float" json:"calories"`
	Protein         float64          `gorm:"type:float" json:"protein"`
	Fat             float64          `gorm:"type:float" json:"fat"`
	Carbs           float64          `gorm:"type:float" json:"carbs"`
	Fiber           float64          `gorm:"type:float" json:"fiber"`
	Salt            float64          `gorm:"type:float" json:"salt"`
	Embedding       pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
}

// Nutrition returns the per-serving nutrition values as a vector.
func (r *Recipe) Nutrition() nutrition.Vector {
	return nutrition.Vector{
		Calories: r.Calories,
		Protein:  r.Protein,
		Fat:      r.Fat,
		Carbs:    r.Carbs,
		Fiber:    r.Fiber,
		Salt:     r.Salt,
	}
}

// SetNutrition writes a nutrition vector back onto the flat columns.
func (r *Recipe) SetNutrition(v nutrition.Vector) {
	r.Calories = v.Calories
	r.Protein = v.Protein
	r.Fat = v.Fat
	r.Carbs = v.Carbs
	r.Fiber = v.Fiber
	r.Salt = v.Salt
}

// Snapshot builds the immutable view of the recipe the modification engine
// consumes. Ingredient and step slices are copied so the engine result can
// never alias the stored row.
func (r *Recipe) Snapshot() modifier.RecipeSnapshot {
	ingredients := make([]modifier.Ingredient, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	steps := make([]modifier.Step, len(r.Steps))
	copy(steps, r.Steps)

	return modifier.RecipeSnapshot{
		ID:              r.ID,
		UserID:          r.UserID,
		Title:           r.Title,
		Ingredients:     ingredients,
		Steps:           steps,
		Servings:        r.Servings,
		Nutrition:       r.Nutrition(),
		PrepTimeMinutes: r.PrepTimeMinutes,
		IsPublic:        r.IsPublic,
	}
}

type RecipeFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
