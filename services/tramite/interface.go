package tramite

import (
	tramiteRepo "uniportal/database/repository/tramite"
	"uniportal/models"
)

// RegistrarInput carries the fields accepted when filing a trámite.
// Documentos, Adicional and Estado are optional and defaulted.
type RegistrarInput struct {
	IDUsuario  string
	IDTramite  string
	Documentos []string
	Adicional  string
	Estado     string
}

type TramiteService interface {
	// GetTipos returns the distinct trámite types in the catalog.
	GetTipos() ([]string, error)
	// GetByTipo returns all catalog entries of the given type.
	GetByTipo(tipo string) ([]models.Tramite, error)
	// GetDetalle returns the detail projection of a catalog entry, or
	// (nil, nil) when no entry has the given id.
	GetDetalle(id string) (*models.TramiteDetalle, error)
	// Registrar files a trámite for a user and returns the created record.
	Registrar(input RegistrarInput) (*models.TramiteRealizado, error)
}

// DefaultTramiteService is the production implementation.
type DefaultTramiteService struct {
	Repo tramiteRepo.TramiteRepository
}
