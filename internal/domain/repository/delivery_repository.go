package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para DeliveredPieces.
// Los Get devuelven (nil, nil) cuando el registro no existe. Nunca hay borrado
// físico: la desactivación pasa por Update con Status=inactive.
type DeliveryRepository interface {
	Create(ctx context.Context, d *entity.DeliveredPieces) error
	GetByID(ctx context.Context, id int64) (*entity.DeliveredPieces, error)
	Update(ctx context.Context, d *entity.DeliveredPieces) error
	ListAll(ctx context.Context) ([]*entity.DeliveredPieces, error)
	ListActive(ctx context.Context) ([]*entity.DeliveredPieces, error)
	ListActiveByGroup(ctx context.Context, idGroup string) ([]*entity.DeliveredPieces, error)
	// ListOnePerGroup devuelve un registro activo por cada id_group distinto.
	// Desempate: el de menor id del grupo.
	ListOnePerGroup(ctx context.Context) ([]*entity.DeliveredPieces, error)
}
