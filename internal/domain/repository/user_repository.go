package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error // domain.ErrDuplicate si el username ya existe
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
