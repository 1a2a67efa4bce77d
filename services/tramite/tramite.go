package tramite

import (
	"time"

	"uniportal/models"

	"github.com/google/uuid"
)

// GetTipos returns the distinct trámite types in the catalog.
func (s *DefaultTramiteService) GetTipos() ([]string, error) {
	return s.Repo.GetTipos()
}

// GetByTipo returns all catalog entries of the given type.
func (s *DefaultTramiteService) GetByTipo(tipo string) ([]models.Tramite, error) {
	return s.Repo.GetByTipo(tipo)
}

// GetDetalle returns the fixed detail projection of a catalog entry.
func (s *DefaultTramiteService) GetDetalle(id string) (*models.TramiteDetalle, error) {
	tramite, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tramite == nil {
		return nil, nil
	}
	return &models.TramiteDetalle{
		ID:          tramite.ID,
		Nombre:      tramite.Nombre,
		Tipo:        tramite.Tipo,
		Costo:       tramite.Costo,
		Requisitos:  tramite.Requisitos,
		Descripcion: tramite.Descripcion,
	}, nil
}

// Registrar files a trámite, defaulting the optional fields and stamping the
// filing time. The user and trámite ids are stored as supplied; referential
// integrity is the store's concern.
func (s *DefaultTramiteService) Registrar(input RegistrarInput) (*models.TramiteRealizado, error) {
	documentos := input.Documentos
	if documentos == nil {
		documentos = []string{}
	}
	estado := input.Estado
	if estado == "" {
		estado = models.EstadoPendiente
	}

	realizado := &models.TramiteRealizado{
		ID:         uuid.NewString(),
		IDUsuario:  input.IDUsuario,
		IDTramite:  input.IDTramite,
		Documentos: documentos,
		Adicional:  input.Adicional,
		Estado:     estado,
		Fechas:     time.Now(),
	}
	if err := s.Repo.CreateRealizado(realizado); err != nil {
		return nil, err
	}
	return realizado, nil
}
