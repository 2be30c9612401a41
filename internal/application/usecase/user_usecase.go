package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios del sistema. Las
// contraseñas solo existen en texto plano dentro de la petición: aquí se
// hashean con bcrypt antes de tocar la persistencia.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario nuevo con estado activo.
// domain.ErrDuplicate si el username ya existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Rol:          in.Rol,
		Estado:       entity.StatusActive,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetByID obtiene un usuario. domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(u), nil
}

// List devuelve todos los usuarios, activos e inactivos.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserList(users), nil
}

// ListActive devuelve solo los usuarios con estado activo.
func (uc *UserUseCase) ListActive(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toUserList(users), nil
}

// Update sobreescribe solo los campos presentes. Si llega password nueva se
// vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Rol != nil {
		u.Rol = *in.Rol
	}
	if in.Estado != nil {
		u.Estado = *in.Estado
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Deactivate es el borrado lógico: el usuario queda inactivo y no puede
// iniciar sesión, pero sigue en el listado sin filtrar.
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64) error {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	u.Estado = entity.StatusInactive
	return uc.repo.Update(ctx, u)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Rol:      u.Rol,
		Estado:   u.Estado,
	}
}

func toUserList(users []*entity.User) *dto.UserListResponse {
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	out.Total = len(out.Users)
	return out
}
