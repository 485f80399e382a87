package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/middleware"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

type CollectionHandler struct {
	collectionService *service.CollectionService
	authService       *service.AuthService
}

func NewCollectionHandler(collectionService *service.CollectionService, authService *service.AuthService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		authService:       authService,
	}
}

func (h *CollectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	collections := router.Group("/collections", middleware.AuthMiddleware(h.authService))
	{
		collections.POST("", h.CreateCollection)
		collections.GET("", h.ListCollections)
		collections.DELETE("/:id", h.DeleteCollection)
		collections.GET("/:id/recipes", h.ListCollectionRecipes)
		collections.POST("/:id/recipes", h.AddRecipe)
		collections.DELETE("/:id/recipes/:recipeID", h.RemoveRecipe)
	}
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create collection"})
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	collections, err := h.collectionService.ListCollections(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch collections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), id, userID); err != nil {
		h.respondCollectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CollectionHandler) ListCollectionRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipes, err := h.collectionService.ListRecipes(c.Request.Context(), id, userID)
	if err != nil {
		h.respondCollectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *CollectionHandler) AddRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.AddCollectionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipeID := uuid.MustParse(req.RecipeID)

	if err := h.collectionService.AddRecipe(c.Request.Context(), id, recipeID, userID); err != nil {
		h.respondCollectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CollectionHandler) RemoveRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "recipeID")
	if !ok {
		return
	}

	if err := h.collectionService.RemoveRecipe(c.Request.Context(), id, recipeID, userID); err != nil {
		h.respondCollectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CollectionHandler) respondCollectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotCollectionOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "collection operation failed"})
	}
}
