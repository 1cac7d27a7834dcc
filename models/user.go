// user.go - Defines the User model and role constants

package models

import "time"

// Role is the coarse permission tag carried in session tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `gorm:"default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
