package repositories

import "tomato/internal/models"

// DishRepository defines the interface for dish data access.
//
// GetByID returns (nil, nil) when no dish matches the id: a point lookup
// on an absent id is an empty result, not an error. Delete reports the
// number of removed rows; deleting an absent id is a zero-effect success.
type DishRepository interface {
	GetAll() ([]models.Dish, error)
	GetByID(id string) (*models.Dish, error)
	Create(dish *models.Dish) error
	Upsert(dish *models.Dish) error
	Delete(id string) (int64, error)
}
