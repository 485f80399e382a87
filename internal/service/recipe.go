package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

var ErrNotRecipeOwner = errors.New("recipe does not belong to the user")

// EmbeddingServiceInterface abstracts embedding generation for search
type EmbeddingServiceInterface interface {
	GenerateEmbedding(text string) (pgvector.Vector, error)
}

// RecipeService handles recipe CRUD, search and favorites
type RecipeService struct {
	db               *gorm.DB
	embeddingService EmbeddingServiceInterface
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, embeddingService EmbeddingServiceInterface) *RecipeService {
	return &RecipeService{
		db:               db,
		embeddingService: embeddingService,
	}
}

// CreateRecipe creates a new recipe for the given user
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	embedding, err := s.embeddingService.GenerateEmbedding(req.Title + " " + req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	recipe := &models.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		Ingredients:     models.JSONBIngredients(req.Ingredients),
		Steps:           models.JSONBSteps(req.Steps),
		Servings:        req.Servings,
		PrepTimeMinutes: req.PrepTimeMinutes,
		IsPublic:        req.IsPublic,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Fat:             req.Fat,
		Carbs:           req.Carbs,
		Fiber:           req.Fiber,
		Salt:            req.Salt,
		Embedding:       embedding,
		UserID:          userID,
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID. Private recipes are only visible to
// their owner.
func (s *RecipeService) GetRecipe(ctx context.Context, id, userID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if !recipe.IsPublic && recipe.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update to an owned recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotRecipeOwner
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Category != "" {
		recipe.Category = req.Category
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.JSONBIngredients(req.Ingredients)
	}
	if req.Steps != nil {
		recipe.Steps = models.JSONBSteps(req.Steps)
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}
	if req.Calories != nil {
		recipe.Calories = *req.Calories
	}
	if req.Protein != nil {
		recipe.Protein = *req.Protein
	}
	if req.Fat != nil {
		recipe.Fat = *req.Fat
	}
	if req.Carbs != nil {
		recipe.Carbs = *req.Carbs
	}
	if req.Fiber != nil {
		recipe.Fiber = *req.Fiber
	}
	if req.Salt != nil {
		recipe.Salt = *req.Salt
	}

	embedding, err := s.embeddingService.GenerateEmbedding(recipe.Title + " " + recipe.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	recipe.Embedding = embedding

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe soft-deletes an owned recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotRecipeOwner
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// ListRecipes lists the caller's recipes plus public ones
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ? OR is_public = ?", userID, true).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// SearchRecipes combines keyword and vector similarity search on PostgreSQL,
// falling back to keyword-only matching elsewhere.
func (s *RecipeService) SearchRecipes(ctx context.Context, userID uuid.UUID, query string) ([]*models.Recipe, error) {
	var recipes []models.Recipe

	dbQuery := s.db.WithContext(ctx).Where("user_id = ? OR is_public = ?", userID, true)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec, err := s.embeddingService.GenerateEmbedding(query)
			if err != nil {
				return nil, err
			}

			subQuery := s.db.Model(&models.Recipe{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients::text) LIKE ?",
					like, like, like)

			dbQuery = dbQuery.Joins("JOIN (?) as search ON recipes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// FavoriteRecipe marks a recipe as a favorite of the user. Adding the same
// favorite twice is a no-op.
func (s *RecipeService) FavoriteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, recipeID, userID); err != nil {
		return err
	}

	var existing models.RecipeFavorite
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := models.RecipeFavorite{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
	}
	return s.db.WithContext(ctx).Create(&favorite).Error
}

// UnfavoriteRecipe removes a favorite
func (s *RecipeService) UnfavoriteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.RecipeFavorite{}).Error
}

// ListFavorites returns the user's favorite recipes
func (s *RecipeService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}
