package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login and JWT issuance
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user with a profile and optional dietary data, then
// returns a signed token. Preference and allergen lists are comma-separated.
func (s *AuthService) Register(name, email, password, username, dietaryPrefs, allergens string) (string, error) {
	var existingUser models.User
	if err := s.db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	profile := models.UserProfile{
		ID:       uuid.New(),
		UserID:   user.ID,
		Username: username,
		Email:    email,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return "", err
	}

	for _, p := range strings.Split(dietaryPrefs, ",") {
		pref := strings.TrimSpace(p)
		if pref == "" {
			continue
		}
		dp := models.DietaryPreference{
			ID:             uuid.New(),
			UserID:         user.ID,
			PreferenceType: pref,
		}
		if err := s.db.Create(&dp).Error; err != nil {
			return "", err
		}
	}

	for _, a := range strings.Split(allergens, ",") {
		name := strings.TrimSpace(a)
		if name == "" {
			continue
		}
		record := models.Allergen{
			ID:            uuid.New(),
			UserID:        user.ID,
			AllergenName:  name,
			SeverityLevel: 1,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return "", err
		}
	}

	return s.GenerateToken(user.ID, username)
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	var profile models.UserProfile
	username := ""
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		username = profile.Username
	}

	return s.GenerateToken(user.ID, username)
}

// GenerateToken signs a 24h HS256 token for the given user
func (s *AuthService) GenerateToken(userID uuid.UUID, username string) (string, error) {
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token string
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
