package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

// Service provides authentication and current-user resolution.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Authenticate verifies email and password and returns the account with
// its roles loaded.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	result := s.db.Preload("Roles").Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, result.Error
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrAccountInactive
	}

	return &user, nil
}

// UserByID loads an account with its roles. This backs current-user
// resolution after a bearer token was verified.
func (s *Service) UserByID(id string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	result := s.db.Preload("Roles").Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}
