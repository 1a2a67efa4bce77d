package user

import (
	userRepo "uniportal/database/repository/user"
	"uniportal/models"
)

type UserService interface {
	// SignIn returns the user registered under the given email, creating the
	// record on first sign-in. Name and image from repeat sign-ins are ignored.
	SignIn(email, nombre, image string) (*models.Usuario, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
