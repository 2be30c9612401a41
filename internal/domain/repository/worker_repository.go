package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type WorkerRepository interface {
	Create(ctx context.Context, w *entity.Worker) error // domain.ErrDuplicate si la cédula ya existe
	GetByID(ctx context.Context, id int64) (*entity.Worker, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*entity.Worker, error)
	List(ctx context.Context) ([]*entity.Worker, error)
	ListActive(ctx context.Context) ([]*entity.Worker, error)
	Update(ctx context.Context, w *entity.Worker) error
	// AvgSalarioActivoPorCargo promedia el salario de las trabajadoras activas
	// del cargo. ok=false cuando no hay ninguna (el costeo cae a la constante).
	AvgSalarioActivoPorCargo(ctx context.Context, cargo string) (avg decimal.Decimal, ok bool, err error)
}
