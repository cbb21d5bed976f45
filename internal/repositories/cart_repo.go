package repositories

import "tomato/internal/models"

// CartRepository defines the interface for cart item data access.
//
// GetByDishID returns (nil, nil) when no cart item references the dish.
// Delete reports the number of removed rows; deleting an absent id is a
// zero-effect success.
type CartRepository interface {
	GetByEmail(email string) ([]models.CartItem, error)
	GetByDishID(dishID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Delete(id string) (int64, error)
}
