package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
)

var ErrNotModificationOwner = errors.New("modification does not belong to the user")

// ModificationService runs the modification engine against stored recipes and
// persists the results.
type ModificationService struct {
	db *gorm.DB
}

// NewModificationService creates a new ModificationService instance
func NewModificationService(db *gorm.DB) *ModificationService {
	return &ModificationService{db: db}
}

// ModifyRecipe loads the recipe, applies the requested modification and stores
// the result as a new record. The source recipe row is never touched.
func (s *ModificationService) ModifyRecipe(ctx context.Context, recipeID, userID uuid.UUID, params modifier.Params) (*models.RecipeModification, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, err
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}

	result, err := modifier.Apply(recipe.Snapshot(), params)
	if err != nil {
		return nil, err
	}

	record := &models.RecipeModification{
		ID:               uuid.New(),
		RecipeID:         recipe.ID,
		UserID:           userID,
		ModificationType: string(params.ModificationType()),
	}
	record.SetResult(result)

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// ListModifications returns the caller's modifications of a recipe, newest
// first.
func (s *ModificationService) ListModifications(ctx context.Context, recipeID, userID uuid.UUID) ([]*models.RecipeModification, error) {
	var mods []models.RecipeModification
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Order("created_at DESC").
		Find(&mods).Error; err != nil {
		return nil, err
	}

	result := make([]*models.RecipeModification, len(mods))
	for i := range mods {
		result[i] = &mods[i]
	}
	return result, nil
}

// GetModification retrieves a single modification owned by the caller
func (s *ModificationService) GetModification(ctx context.Context, id, userID uuid.UUID) (*models.RecipeModification, error) {
	var mod models.RecipeModification
	if err := s.db.WithContext(ctx).First(&mod, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if mod.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &mod, nil
}

// DeleteModification removes a modification owned by the caller
func (s *ModificationService) DeleteModification(ctx context.Context, id, userID uuid.UUID) error {
	var mod models.RecipeModification
	if err := s.db.WithContext(ctx).First(&mod, "id = ?", id).Error; err != nil {
		return err
	}
	if mod.UserID != userID {
		return ErrNotModificationOwner
	}
	return s.db.WithContext(ctx).Delete(&mod).Error
}
