package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/middleware"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

type ModificationHandler struct {
	modificationService *service.ModificationService
	authService         *service.AuthService
	rateLimiter         *middleware.RateLimiter
}

func NewModificationHandler(modificationService *service.ModificationService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *ModificationHandler {
	return &ModificationHandler{
		modificationService: modificationService,
		authService:         authService,
		rateLimiter:         rateLimiter,
	}
}

func (h *ModificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	createHandlers := []gin.HandlerFunc{auth}
	if h.rateLimiter != nil {
		createHandlers = append(createHandlers, h.rateLimiter.PerRecipeRateLimitMiddleware())
	}
	createHandlers = append(createHandlers, h.ModifyRecipe)

	router.POST("/recipes/:id/modifications", createHandlers...)
	router.GET("/recipes/:id/modifications", auth, h.ListModifications)
	router.GET("/modifications/:id", auth, h.GetModification)
	router.DELETE("/modifications/:id", auth, h.DeleteModification)
}

func (h *ModificationHandler) ModifyRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.ModifyRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := req.Params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.modificationService.ModifyRecipe(c.Request.Context(), recipeID, userID, params)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, modifier.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify recipe"})
		}
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ModificationHandler) ListModifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	mods, err := h.modificationService.ListModifications(c.Request.Context(), recipeID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch modifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifications": mods})
}

func (h *ModificationHandler) GetModification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	mod, err := h.modificationService.GetModification(c.Request.Context(), id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "modification not found"})
		return
	}
	c.JSON(http.StatusOK, mod)
}

func (h *ModificationHandler) DeleteModification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.modificationService.DeleteModification(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "modification not found"})
		case errors.Is(err, service.ErrNotModificationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete modification"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
