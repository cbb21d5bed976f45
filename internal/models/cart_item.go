package models

import "time"

// CartItem represents a dish placed in a user's cart.
//
// The unique index on DishID enforces the at-most-one-cart-item-per-dish
// rule at the database level, closing the race between the duplicate
// pre-check and the insert.
type CartItem struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	DishID    string    `json:"dishId" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Email     string    `json:"email" gorm:"index;type:varchar(255)" validate:"required,email"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Price     float64   `json:"price"`
	Image     string    `json:"image" gorm:"type:varchar(500)"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
