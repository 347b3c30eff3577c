package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Jo Lee"`                          // Display name
	Email        string    `json:"email" db:"email" example:"jo@example.com"`                // User's email address (unique)
	PasswordHash *string   `json:"-" db:"password_hash"`                                     // bcrypt hash, nil for admin-added students without credentials
	Role         RoleType  `json:"role" db:"role" example:"student"`                         // User's role (student or admin)
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
