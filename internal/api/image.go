package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/middleware"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

// 5 MB upload cap
const maxImageSize = 5 << 20

type ImageHandler struct {
	imageService  *service.ImageService
	recipeService *service.RecipeService
	authService   *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, recipeService *service.RecipeService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService:  imageService,
		recipeService: recipeService,
		authService:   authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", middleware.AuthMiddleware(h.authService), h.UploadRecipeImage)
}

// UploadRecipeImage stores a multipart image in S3 and points the recipe's
// image URL at it.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	imageURL, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), recipeID, userID, &types.UpdateRecipeRequest{
		ImageURL: imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrNotRecipeOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": recipe.ImageURL})
}
