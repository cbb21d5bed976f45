package models

import "time"

// Dish represents a dish on the menu.
type Dish struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category" gorm:"type:varchar(100)" validate:"required"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Ratings     float64   `json:"ratings" validate:"omitempty,gte=0,lte=5"`
	Image       string    `json:"image" gorm:"type:varchar(500)" validate:"omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
