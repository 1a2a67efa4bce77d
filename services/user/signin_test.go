package user

import (
	"errors"
	"testing"

	"uniportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	stored      map[string]*models.Usuario
	createCalls int
	getErr      error
	createErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{stored: map[string]*models.Usuario{}}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.Usuario, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored[email], nil
}

func (f *fakeUserRepo) Create(usuario *models.Usuario) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.stored[usuario.Email] = usuario
	return nil
}

func TestSignIn_NewUserCreatedWithDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	usuario, err := svc.SignIn("ana@uni.edu", "Ana", "https://img.example/ana.png")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.createCalls)
	assert.NotEmpty(t, usuario.ID)
	assert.Equal(t, "ana@uni.edu", usuario.Email)
	assert.Equal(t, "Ana", usuario.Nombre)
	assert.Equal(t, models.CarreraSinDefinir, usuario.Carrera)
}

func TestSignIn_ExistingUserNotModified(t *testing.T) {
	repo := newFakeUserRepo()
	existing := &models.Usuario{
		ID:      "u1",
		Email:   "ana@uni.edu",
		Nombre:  "Ana María",
		Carrera: "Ingeniería",
	}
	repo.stored[existing.Email] = existing
	svc := &DefaultUserService{Repo: repo}

	usuario, err := svc.SignIn("ana@uni.edu", "Otro Nombre", "https://img.example/otro.png")
	require.NoError(t, err)

	assert.Zero(t, repo.createCalls, "repeat sign-ins must not insert")
	assert.Equal(t, existing, usuario, "stored record wins over supplied claims")
}

func TestSignIn_RepoLookupError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("mongo down")
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.SignIn("ana@uni.edu", "Ana", "")
	assert.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestSignIn_RepoCreateError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("duplicate key")
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.SignIn("ana@uni.edu", "Ana", "")
	assert.Error(t, err)
}
