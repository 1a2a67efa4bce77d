package servicio

import (
	"time"

	"uniportal/models"

	"github.com/google/uuid"
)

// GetTipos returns the distinct service types in the catalog.
func (s *DefaultServicioService) GetTipos() ([]string, error) {
	return s.Repo.GetTipos()
}

// GetByTipo returns the reduced projection of all services of the given type.
func (s *DefaultServicioService) GetByTipo(tipo string) ([]models.ServicioResumen, error) {
	return s.Repo.GetByTipo(tipo)
}

// Registrar books a service, defaulting the status and stamping the
// registration time.
func (s *DefaultServicioService) Registrar(input RegistrarInput) (*models.ServicioUtilizado, error) {
	estado := input.Estado
	if estado == "" {
		estado = models.EstadoPendiente
	}

	utilizado := &models.ServicioUtilizado{
		ID:             uuid.NewString(),
		IDUsuario:      input.IDUsuario,
		IDServicio:     input.IDServicio,
		HorarioElegido: input.HorarioElegido,
		Estado:         estado,
		FechaRegistro:  time.Now(),
	}
	if err := s.Repo.CreateUtilizado(utilizado); err != nil {
		return nil, err
	}
	return utilizado, nil
}
