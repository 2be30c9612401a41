package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

func TestUserCreate_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula",
		Password: "secreta-123",
		Rol:      entity.RolAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.Estado, "los usuarios nuevos entran activos")

	guardado, err := repo.GetByUsername(context.Background(), "paula")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta-123", guardado.PasswordHash, "nunca se persiste en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("secreta-123")))
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula", Password: "secreta-123", Rol: entity.RolUser,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula", Password: "otra-clave-9", Rol: entity.RolUser,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUpdate_RehashSoloConPasswordNueva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	creado, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula", Password: "secreta-123", Rol: entity.RolUser,
	})
	require.NoError(t, err)

	antes, _ := repo.GetByID(context.Background(), creado.ID)

	email := "paula@taller.co"
	_, err = uc.Update(context.Background(), creado.ID, dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)

	despues, _ := repo.GetByID(context.Background(), creado.ID)
	assert.Equal(t, antes.PasswordHash, despues.PasswordHash, "sin password nueva el hash no cambia")
	assert.Equal(t, "paula@taller.co", despues.Email)

	nueva := "clave-nueva-456"
	_, err = uc.Update(context.Background(), creado.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	final, _ := repo.GetByID(context.Background(), creado.ID)
	assert.NotEqual(t, despues.PasswordHash, final.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(final.PasswordHash), []byte(nueva)))
}

func TestUserDeactivate_SigueEnListadoCompleto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	creado, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula", Password: "secreta-123", Rol: entity.RolUser,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), creado.ID))

	activos, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, activos.Total)

	todos, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, todos.Total)
	assert.Equal(t, entity.StatusInactive, todos.Users[0].Estado)
}

func TestUserDeactivate_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Deactivate(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserResponse_NuncaExponeElHash(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "paula", Password: "secreta-123", Rol: entity.RolSuper,
	})
	require.NoError(t, err)

	// El DTO de salida simplemente no tiene campo para el hash.
	assert.Equal(t, "paula", out.Username)
	assert.Equal(t, entity.RolSuper, out.Rol)
}
