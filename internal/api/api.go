package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/middleware"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
)

// SetupAPI wires services and handlers onto /api/v1. The Redis client may be
// nil, in which case modification rate limiting is disabled; a nil image
// service disables image uploads.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, imageService *service.ImageService, jwtSecret string) {
	v1 := router.Group("/api/v1")
	{
		authService := service.NewAuthService(db, jwtSecret)
		embeddingService := service.NewEmbeddingService()
		recipeService := service.NewRecipeService(db, embeddingService)
		modificationService := service.NewModificationService(db)
		collectionService := service.NewCollectionService(db)
		profileService := service.NewProfileService(db)

		var rateLimiter *middleware.RateLimiter
		if redisClient != nil {
			rateLimiter = middleware.NewModificationRateLimiter(redisClient)
		}

		authHandler := NewAuthHandler(authService)
		recipeHandler := NewRecipeHandler(recipeService, authService)
		modificationHandler := NewModificationHandler(modificationService, authService, rateLimiter)
		collectionHandler := NewCollectionHandler(collectionService, authService)
		profileHandler := NewProfileHandler(profileService, authService)

		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		modificationHandler.RegisterRoutes(v1)
		collectionHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)

		if imageService != nil {
			imageHandler := NewImageHandler(imageService, recipeService, authService)
			imageHandler.RegisterRoutes(v1)
		}
	}
}

// currentUserID pulls the authenticated user's ID from the request context.
// The auth middleware guarantees it is present on protected routes.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID path parameter, responding with 400 on garbage
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
