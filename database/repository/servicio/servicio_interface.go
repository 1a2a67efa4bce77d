package servicioRepo

import (
	"uniportal/models"
)

// ServicioRepository defines persistence operations for the service catalog
// and for service bookings.
type ServicioRepository interface {
	// GetTipos returns the distinct service types present in the catalog.
	GetTipos() ([]string, error)
	// GetByTipo returns the reduced projection of all services of the given type.
	GetByTipo(tipo string) ([]models.ServicioResumen, error)
	// CreateUtilizado inserts a service booking record.
	CreateUtilizado(su *models.ServicioUtilizado) error
}
