package models

import "time"

// User represents a registered user of the restaurant app.
//
// Email carries a unique index so that concurrent registrations with the
// same address cannot both succeed even though the service-level duplicate
// check is not atomic with the insert.
type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Role      string    `json:"role" gorm:"type:varchar(50)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the Admin role (case-sensitive).
func (u *User) IsAdmin() bool {
	return u.Role == "Admin"
}
