package user

import (
	"fmt"

	"uniportal/models"
	"uniportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignIn looks up the user by email and registers a new record when none
// exists. The career field starts out with the placeholder value; there is
// no update path, so an existing user's stored name and image win over
// whatever the identity provider sent this time.
func (s *DefaultUserService) SignIn(email, nombre, image string) (*models.Usuario, error) {
	usuario, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usuario != nil {
		return usuario, nil
	}

	usuario = &models.Usuario{
		ID:      uuid.NewString(),
		Email:   email,
		Nombre:  nombre,
		Image:   image,
		Carrera: models.CarreraSinDefinir,
	}
	if err := s.Repo.Create(usuario); err != nil {
		utils.GetLogger().Error("SignIn: failed to register user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return usuario, nil
}
