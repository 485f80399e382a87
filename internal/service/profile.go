package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

// ProfileService handles user profile and dietary settings
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates the provided fields of a user's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Username != "" {
		profile.Username = req.Username
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ProfilePictureURL != nil {
		profile.ProfilePictureURL = *req.ProfilePictureURL
	}
	if req.PrivacyLevel != nil {
		profile.PrivacyLevel = *req.PrivacyLevel
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetDietary returns the user's dietary preferences and allergens
func (s *ProfileService) GetDietary(ctx context.Context, userID uuid.UUID) ([]models.DietaryPreference, []models.Allergen, error) {
	var prefs []models.DietaryPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, nil, err
	}

	var allergens []models.Allergen
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&allergens).Error; err != nil {
		return nil, nil, err
	}

	return prefs, allergens, nil
}

// UpdateDietary replaces the user's dietary preferences and allergens in one
// transaction.
func (s *ProfileService) UpdateDietary(ctx context.Context, userID uuid.UUID, req *types.UpdateDietaryRequest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.DietaryPreference{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Allergen{}).Error; err != nil {
			return err
		}

		for _, pref := range req.DietaryPreferences {
			dp := models.DietaryPreference{
				ID:             uuid.New(),
				UserID:         userID,
				PreferenceType: pref,
			}
			if err := tx.Create(&dp).Error; err != nil {
				return err
			}
		}

		for _, name := range req.Allergens {
			record := models.Allergen{
				ID:            uuid.New(),
				UserID:        userID,
				AllergenName:  name,
				SeverityLevel: 1,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
