package models

import "time"

// Category represents a food category shown on the menu.
// Categories are read-only through the API; they are seeded at startup
// or managed directly in the database.
type Category struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Image     string    `json:"image" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
