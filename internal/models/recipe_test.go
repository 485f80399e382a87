package models_test

import (
	"testing"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/testhelpers"
)

func TestRecipeRoundTripsThroughDatabase(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	user := testhelpers.CreateTestUser(t, db)

	recipe := &models.Recipe{
		ID:    uuid.New(),
		Title: "Owsianka",
		Ingredients: models.JSONBIngredients{
			{Name: "płatki owsiane", Amount: 50, Unit: "g"},
		},
		Steps:    models.JSONBSteps{{Number: 1, Instruction: "Zalej płatki mlekiem."}},
		Servings: 1,
		Calories: 180, Protein: 6, Fat: 3, Carbs: 30, Fiber: 4, Salt: 0.1,
		Embedding: pgvector.NewVector([]float32{8, 3, 5}),
		UserID:    user.ID,
	}
	require.NoError(t, db.Create(recipe).Error)

	var stored models.Recipe
	require.NoError(t, db.First(&stored, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Owsianka", stored.Title)
	assert.Equal(t, "płatki owsiane", stored.Ingredients[0].Name)
	assert.Equal(t, []float32{8, 3, 5}, stored.Embedding.Slice())
	assert.Equal(t, 180.0, stored.Calories)
	assert.Equal(t, 0.1, stored.Salt)
}
