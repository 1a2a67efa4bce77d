package userRepo

import (
	"uniportal/models"
)

// UserRepository defines persistence operations for portal users.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns (nil, nil) when no user exists.
	GetByEmail(email string) (*models.Usuario, error)
	// Create inserts a new user document.
	Create(usuario *models.Usuario) error
}
