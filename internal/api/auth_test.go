package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	registerBody := map[string]interface{}{
		"name":                "Anna Kowalska",
		"email":               "anna@example.com",
		"password":            "password123",
		"username":            "anna",
		"dietary_preferences": "vegetarian",
		"allergens":           "peanuts",
	}
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registerResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	assert.NotEmpty(t, registerResp.Token)

	// Duplicate email is rejected
	w = performRequest(router, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the new credentials
	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "anna@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)

	// The token opens protected routes
	w = performRequest(router, http.MethodGet, "/api/v1/profile", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password is rejected
	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "anna@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	// Missing email
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Anna",
		"password": "password123",
		"username": "anna",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short
	w = performRequest(router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Anna",
		"email":    "anna@example.com",
		"password": "short",
		"username": "anna",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
