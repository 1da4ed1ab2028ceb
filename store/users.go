package store

import (
	"errors"
	"time"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUser inserts a new user; the password is hashed by the model's
// BeforeCreate hook.
func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict("Email '%s' is already registered", user.Email)
		}
		return err
	}
	return nil
}

// GetUserByEmail retrieves a user for login.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("No account for email %s", email)
		}
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User with ID %s not found", id)
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login.
func (s *Store) TouchLastLogin(id uuid.UUID) error {
	now := time.Now()
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", now).Error
}
