package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/taller-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: el login solo necesita búsqueda por username / documento.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	porUsername map[string]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error { f.porUsername[u.Username] = u; return nil }
func (f *fakeUsers) GetByID(_ context.Context, _ int64) (*entity.User, error) { return nil, nil }
func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.porUsername[username], nil
}
func (f *fakeUsers) List(_ context.Context) ([]*entity.User, error)       { return nil, nil }
func (f *fakeUsers) ListActive(_ context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUsers) Update(_ context.Context, _ *entity.User) error       { return nil }

type fakeFactories struct {
	porDocumento map[string]*entity.Factory
}

func (f *fakeFactories) Create(_ context.Context, fa *entity.Factory) error {
	f.porDocumento[fa.DocumentID] = fa
	return nil
}
func (f *fakeFactories) GetByID(_ context.Context, _ int64) (*entity.Factory, error) { return nil, nil }
func (f *fakeFactories) GetByDocumentID(_ context.Context, documentID string) (*entity.Factory, error) {
	return f.porDocumento[documentID], nil
}
func (f *fakeFactories) List(_ context.Context) ([]*entity.Factory, error) { return nil, nil }
func (f *fakeFactories) Update(_ context.Context, _ *entity.Factory) error { return nil }
func (f *fakeFactories) Delete(_ context.Context, _ int64) error           { return nil }

const testSecret = "auth-test-secret"

func nuevoAuth(t *testing.T) (*auth.AuthUseCase, *fakeUsers, *fakeFactories) {
	t.Helper()
	users := &fakeUsers{porUsername: make(map[string]*entity.User)}
	factories := &fakeFactories{porDocumento: make(map[string]*entity.Factory)}
	uc := auth.NewAuthUseCase(users, factories, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "taller-api-test",
	})
	return uc, users, factories
}

func usuarioActivo(t *testing.T, users *fakeUsers, username, password, rol string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	users.porUsername[username] = &entity.User{
		ID:           1,
		Username:     username,
		PasswordHash: string(hash),
		Rol:          rol,
		Estado:       entity.StatusActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc, users, _ := nuevoAuth(t)
	usuarioActivo(t, users, "paula", "secreta-123", entity.RolAdmin)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "paula", Password: "secreta-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "paula", out.User.Username)

	userID, username, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "paula", username)
	assert.Equal(t, entity.RolAdmin, rol)
}

// Usuario inexistente, inactivo o contraseña mala: siempre el mismo error,
// el llamador no puede distinguir cuál falló.
func TestLogin_CredencialesInvalidasUniformes(t *testing.T) {
	uc, users, _ := nuevoAuth(t)
	usuarioActivo(t, users, "paula", "secreta-123", entity.RolUser)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "desconocida", Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "paula", Password: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	users.porUsername["paula"].Estado = entity.StatusInactive
	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "paula", Password: "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "inactivo no puede iniciar sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LoginFactory
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginFactory_TokenConRolTaller(t *testing.T) {
	uc, _, factories := nuevoAuth(t)
	factories.porDocumento["900123456"] = &entity.Factory{
		ID: 3, Owner: "Taller Norte", DocumentID: "900123456",
	}

	out, err := uc.LoginFactory(context.Background(), dto.FactoryLoginRequest{
		DocumentID: "900123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "Taller Norte", out.Factory.Owner)

	_, owner, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Taller Norte", owner)
	assert.Equal(t, entity.RolTaller, rol)
}

func TestLoginFactory_DocumentoDesconocido(t *testing.T) {
	uc, _, _ := nuevoAuth(t)

	_, err := uc.LoginFactory(context.Background(), dto.FactoryLoginRequest{
		DocumentID: "000",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
