package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
)

// AutoMigrate brings the schema up to date via GORM. PostgreSQL deployments
// get the pgvector extension installed first; sqlite (tests) skips it.
func AutoMigrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector;").Error; err != nil {
			return err
		}
	} else {
		log.Printf("Using GORM auto-migration without pgvector (%s)", db.Dialector.Name())
	}

	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DietaryPreference{},
		&models.Allergen{},
		&models.Recipe{},
		&models.RecipeFavorite{},
		&models.RecipeCollection{},
		&models.RecipeCollectionItem{},
		&models.RecipeModification{},
	)
}
