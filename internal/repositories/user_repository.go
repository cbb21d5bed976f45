package repositories

import "tomato/internal/models"

// UserRepository defines the interface for user data access.
//
// GetByEmail returns (nil, nil) when no user matches the email.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}
