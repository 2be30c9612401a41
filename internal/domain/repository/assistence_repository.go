package repository

import (
	"context"
	"time"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// AssistenceRepository define el puerto de persistencia para Assistence.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type AssistenceRepository interface {
	// Create inserta el registro de llegada. Devuelve domain.ErrAlreadyMarked
	// si el índice único (worker_id, día civil) rechaza el insert: es el
	// respaldo del chequeo previo contra carreras de doble marcación.
	Create(ctx context.Context, a *entity.Assistence) error
	GetByID(ctx context.Context, id int64) (*entity.Assistence, error)
	// FindByWorkerAndDay busca el registro de la trabajadora cuyo arrival_time
	// cae en el día civil (Bogotá) indicado.
	FindByWorkerAndDay(ctx context.Context, workerID int64, day time.Time) (*entity.Assistence, error)
	ListByDay(ctx context.Context, day time.Time) ([]*entity.Assistence, error)
	ListByWorker(ctx context.Context, workerID int64) ([]*entity.Assistence, error)
	// StampDeparture estampa la salida solo si aún no fue registrada.
	// Devuelve domain.ErrAlreadyDeparted cuando otro proceso ganó la carrera.
	StampDeparture(ctx context.Context, id int64, salida time.Time) error
}
