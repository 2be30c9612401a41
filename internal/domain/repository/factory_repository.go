package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// FactoryRepository define el puerto de persistencia para Factory.
type FactoryRepository interface {
	Create(ctx context.Context, f *entity.Factory) error
	GetByID(ctx context.Context, id int64) (*entity.Factory, error)
	GetByDocumentID(ctx context.Context, documentID string) (*entity.Factory, error)
	List(ctx context.Context) ([]*entity.Factory, error)
	Update(ctx context.Context, f *entity.Factory) error
	Delete(ctx context.Context, id int64) error
}
