package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

var ErrNotCollectionOwner = errors.New("collection does not belong to the user")

// CollectionService handles user recipe collections
type CollectionService struct {
	db *gorm.DB
}

// NewCollectionService creates a new CollectionService instance
func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates an empty named collection for the user
func (s *CollectionService) CreateCollection(ctx context.Context, userID uuid.UUID, req *types.CreateCollectionRequest) (*models.RecipeCollection, error) {
	collection := &models.RecipeCollection{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

// ListCollections lists the user's collections
func (s *CollectionService) ListCollections(ctx context.Context, userID uuid.UUID) ([]*models.RecipeCollection, error) {
	var collections []models.RecipeCollection
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&collections).Error; err != nil {
		return nil, err
	}

	result := make([]*models.RecipeCollection, len(collections))
	for i := range collections {
		result[i] = &collections[i]
	}
	return result, nil
}

// DeleteCollection removes an owned collection and its items
func (s *CollectionService) DeleteCollection(ctx context.Context, id, userID uuid.UUID) error {
	collection, err := s.ownedCollection(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collection.ID).Delete(&models.RecipeCollectionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(collection).Error
	})
}

// AddRecipe adds a recipe to an owned collection. Duplicates are rejected by
// the unique index; we treat them as a no-op.
func (s *CollectionService) AddRecipe(ctx context.Context, collectionID, recipeID, userID uuid.UUID) error {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return err
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return err
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return gorm.ErrRecordNotFound
	}

	var existing models.RecipeCollectionItem
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item := models.RecipeCollectionItem{
		ID:           uuid.New(),
		CollectionID: collectionID,
		RecipeID:     recipeID,
	}
	return s.db.WithContext(ctx).Create(&item).Error
}

// RemoveRecipe removes a recipe from an owned collection
func (s *CollectionService) RemoveRecipe(ctx context.Context, collectionID, recipeID, userID uuid.UUID) error {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&models.RecipeCollectionItem{}).Error
}

// ListRecipes returns the recipes inside an owned collection
func (s *CollectionService) ListRecipes(ctx context.Context, collectionID, userID uuid.UUID) ([]*models.Recipe, error) {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Joins("JOIN recipe_collection_items ON recipe_collection_items.recipe_id = recipes.id").
		Where("recipe_collection_items.collection_id = ?", collectionID).
		Order("recipe_collection_items.created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

func (s *CollectionService) ownedCollection(ctx context.Context, id, userID uuid.UUID) (*models.RecipeCollection, error) {
	var collection models.RecipeCollection
	if err := s.db.WithContext(ctx).First(&collection, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if collection.UserID != userID {
		return nil, ErrNotCollectionOwner
	}
	return &collection, nil
}
