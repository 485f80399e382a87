package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/api"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/testhelpers"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupAPI(router, db, nil, nil, "test-secret")

	return router, db, service.NewAuthService(db, "test-secret")
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}

func seedRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		ID:    uuid.New(),
		Title: "Maślane ziemniaki",
		Ingredients: models.JSONBIngredients{
			{Name: "ziemniaki", Amount: 500, Unit: "g"},
			{Name: "masło", Amount: 30, Unit: "g"},
		},
		Steps:    models.JSONBSteps{{Number: 1, Instruction: "Ugotuj ziemniaki."}},
		Servings: 4,
		Calories: 450, Protein: 25, Fat: 15, Carbs: 50, Fiber: 8, Salt: 1.5,
		// A zero-valued embedding serializes as "[]", which Scan rejects.
		Embedding: pgvector.NewVector([]float32{0, 0, 0}),
		UserID:    userID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestCreateModificationEndpoint(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	userID, token := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, userID)

	body := map[string]interface{}{
		"modification_type": "reduce_calories",
		"target_calories":   225,
	}
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var record models.RecipeModification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "reduce_calories", record.ModificationType)
	assert.Equal(t, 225.0, record.Calories)
	assert.Equal(t, 12.5, record.Protein)
	assert.Equal(t, 0.75, record.Salt)
	assert.Equal(t, recipe.ID, record.RecipeID)
}

func TestCreateModificationRejectsUnknownType(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	userID, token := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, userID)

	body := map[string]interface{}{
		"modification_type": "make_it_spicy",
	}
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.RecipeModification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateModificationValidatesRanges(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	userID, token := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, userID)

	tests := []map[string]interface{}{
		{"modification_type": "reduce_calories", "target_calories": 20000},
		{"modification_type": "reduce_calories", "reduction_percentage": 0.1},
		{"modification_type": "portion_size", "new_servings": 500},
		{"modification_type": "ingredient_substitution"},
	}
	for _, body := range tests {
		w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}
}

func TestCreateModificationRequiresAuth(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	userID, _ := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, userID)

	body := map[string]interface{}{"modification_type": "portion_size", "new_servings": 8}
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateModificationUnknownRecipe(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db, authService)

	body := map[string]interface{}{"modification_type": "portion_size", "new_servings": 8}
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", uuid.New()), token, body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListGetDeleteModifications(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	userID, token := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, userID)

	// Create two modifications
	for _, body := range []map[string]interface{}{
		{"modification_type": "increase_protein", "target_protein": 35},
		{"modification_type": "ingredient_substitution", "original_ingredient": "masło", "preferred_substitute": "oliwa z oliwek"},
	} {
		w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// List
	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Modifications []models.RecipeModification `json:"modifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Modifications, 2)

	modID := listResp.Modifications[0].ID

	// Get one
	w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/modifications/%s", modID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Delete it
	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/modifications/%s", modID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Gone now
	w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/modifications/%s", modID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModificationsAreOwnerScoped(t *testing.T) {
	router, db, authService := setupTestRouter(t)
	ownerID, ownerToken := testhelpers.CreateTestUserAndToken(t, db, authService)
	_, strangerToken := testhelpers.CreateTestUserAndToken(t, db, authService)
	recipe := seedRecipe(t, db, ownerID)

	body := map[string]interface{}{"modification_type": "portion_size", "new_servings": 8}
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/modifications", recipe.ID), ownerToken, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var record models.RecipeModification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))

	// Stranger can't fetch or delete the owner's modification
	w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/modifications/%s", record.ID), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/modifications/%s", record.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
