package repositories

import "tomato/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
	Count() (int64, error)
}
