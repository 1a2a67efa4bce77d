package servicio

import (
	"testing"
	"time"

	"uniportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServicioRepo struct {
	tipos     []string
	servicios []models.ServicioResumen
	created   []*models.ServicioUtilizado
}

func (f *fakeServicioRepo) GetTipos() ([]string, error) {
	return f.tipos, nil
}

func (f *fakeServicioRepo) GetByTipo(tipo string) ([]models.ServicioResumen, error) {
	return f.servicios, nil
}

func (f *fakeServicioRepo) CreateUtilizado(su *models.ServicioUtilizado) error {
	f.created = append(f.created, su)
	return nil
}

func TestRegistrar_DefaultEstado(t *testing.T) {
	repo := &fakeServicioRepo{}
	svc := &DefaultServicioService{Repo: repo}

	horario := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	before := time.Now()
	solicitud, err := svc.Registrar(RegistrarInput{
		IDUsuario:      "u1",
		IDServicio:     "s1",
		HorarioElegido: horario,
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.NotEmpty(t, solicitud.ID)
	assert.Equal(t, models.EstadoPendiente, solicitud.Estado)
	assert.True(t, solicitud.HorarioElegido.Equal(horario))
	assert.False(t, solicitud.FechaRegistro.Before(before))
}

func TestRegistrar_SuppliedEstadoKept(t *testing.T) {
	repo := &fakeServicioRepo{}
	svc := &DefaultServicioService{Repo: repo}

	solicitud, err := svc.Registrar(RegistrarInput{
		IDUsuario:      "u1",
		IDServicio:     "s1",
		HorarioElegido: time.Now(),
		Estado:         "confirmado",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmado", solicitud.Estado)
}
