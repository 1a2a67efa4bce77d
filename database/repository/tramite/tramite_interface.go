package tramiteRepo

import (
	"uniportal/models"
)

// TramiteRepository defines persistence operations for the trámite catalog
// and for filed trámites.
type TramiteRepository interface {
	// GetTipos returns the distinct trámite types present in the catalog.
	GetTipos() ([]string, error)
	// GetByTipo returns all catalog entries of the given type.
	GetByTipo(tipo string) ([]models.Tramite, error)
	// GetByID retrieves a catalog entry by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Tramite, error)
	// CreateRealizado inserts a filed trámite record.
	CreateRealizado(tr *models.TramiteRealizado) error
}
