package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/testhelpers"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

func TestCollectionLifecycle(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	user := testhelpers.CreateTestUser(t, db)
	recipe := createTestRecipe(t, db, user.ID)

	svc := service.NewCollectionService(db)
	ctx := context.Background()

	collection, err := svc.CreateCollection(ctx, user.ID, &types.CreateCollectionRequest{
		Name:        "Weeknight dinners",
		Description: "Quick meals",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddRecipe(ctx, collection.ID, recipe.ID, user.ID))
	// Adding the same recipe twice is a no-op
	require.NoError(t, svc.AddRecipe(ctx, collection.ID, recipe.ID, user.ID))

	recipes, err := svc.ListRecipes(ctx, collection.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, recipe.ID, recipes[0].ID)

	require.NoError(t, svc.RemoveRecipe(ctx, collection.ID, recipe.ID, user.ID))
	recipes, err = svc.ListRecipes(ctx, collection.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	require.NoError(t, svc.DeleteCollection(ctx, collection.ID, user.ID))
	_, err = svc.ListRecipes(ctx, collection.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCollectionOwnership(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	owner := testhelpers.CreateTestUser(t, db)
	stranger := testhelpers.CreateTestUser(t, db)

	svc := service.NewCollectionService(db)
	ctx := context.Background()

	collection, err := svc.CreateCollection(ctx, owner.ID, &types.CreateCollectionRequest{Name: "Mine"})
	require.NoError(t, err)

	err = svc.DeleteCollection(ctx, collection.ID, stranger.ID)
	assert.ErrorIs(t, err, service.ErrNotCollectionOwner)

	_, err = svc.ListRecipes(ctx, collection.ID, stranger.ID)
	assert.ErrorIs(t, err, service.ErrNotCollectionOwner)
}

func TestUpdateDietaryReplacesSettings(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	user := testhelpers.CreateTestUser(t, db)

	svc := service.NewProfileService(db)
	ctx := context.Background()

	require.NoError(t, svc.UpdateDietary(ctx, user.ID, &types.UpdateDietaryRequest{
		DietaryPreferences: []string{"vegetarian", "low-sodium"},
		Allergens:          []string{"peanuts"},
	}))

	prefs, allergens, err := svc.GetDietary(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, prefs, 2)
	assert.Len(t, allergens, 1)

	// Replacement wipes the previous set
	require.NoError(t, svc.UpdateDietary(ctx, user.ID, &types.UpdateDietaryRequest{
		DietaryPreferences: []string{"vegan"},
	}))

	prefs, allergens, err = svc.GetDietary(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, "vegan", prefs[0].PreferenceType)
	assert.Empty(t, allergens)
}
