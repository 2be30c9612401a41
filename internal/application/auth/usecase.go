package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verifica credenciales y emite tokens. El mismo error
// ErrInvalidCredentials cubre usuario inexistente, inactivo o contraseña
// equivocada: el llamador no puede distinguir cuál falló.
type AuthUseCase struct {
	users     repository.UserRepository
	factories repository.FactoryRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, factories repository.FactoryRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, factories: factories, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt y genera el JWT con
// el rol del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo() {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Rol:      u.Rol,
			Estado:   u.Estado,
		},
	}, nil
}

// LoginFactory es la ruta alterna de los talleres satélite: autentica por
// documento y emite un token con rol "taller".
func (uc *AuthUseCase) LoginFactory(ctx context.Context, in dto.FactoryLoginRequest) (*dto.FactoryLoginResponse, error) {
	f, err := uc.factories.GetByDocumentID(ctx, in.DocumentID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, f.ID, f.Owner, entity.RolTaller, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.FactoryLoginResponse{
		Token: token,
		Factory: dto.FactoryResponse{
			ID:         f.ID,
			Owner:      f.Owner,
			DocumentID: f.DocumentID,
		},
	}, nil
}
