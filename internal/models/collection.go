package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeCollection is a user-curated, named set of recipes.
type RecipeCollection struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (RecipeCollection) TableName() string {
	return "recipe_collections"
}

type RecipeCollectionItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;index:idx_collection_recipe,unique" json:"collection_id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_collection_recipe,unique" json:"recipe_id"`
}

func (RecipeCollectionItem) TableName() string {
	return "recipe_collection_items"
}
