package servicio

import (
	"time"

	servicioRepo "uniportal/database/repository/servicio"
	"uniportal/models"
)

// RegistrarInput carries the fields accepted when booking a service.
// Estado is optional and defaulted.
type RegistrarInput struct {
	IDUsuario      string
	IDServicio     string
	HorarioElegido time.Time
	Estado         string
}

type ServicioService interface {
	// GetTipos returns the distinct service types in the catalog.
	GetTipos() ([]string, error)
	// GetByTipo returns the reduced projection of all services of the given type.
	GetByTipo(tipo string) ([]models.ServicioResumen, error)
	// Registrar books a service for a user and returns the created record.
	Registrar(input RegistrarInput) (*models.ServicioUtilizado, error)
}

// DefaultServicioService is the production implementation.
type DefaultServicioService struct {
	Repo servicioRepo.ServicioRepository
}
