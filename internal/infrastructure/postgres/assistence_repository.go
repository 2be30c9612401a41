package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

var _ repository.AssistenceRepository = (*AssistenceRepo)(nil)

// AssistenceRepo implementación del puerto AssistenceRepository sobre PostgreSQL.
type AssistenceRepo struct {
	pool *pgxpool.Pool
}

// NewAssistenceRepository construye el adaptador de persistencia para asistencias.
func NewAssistenceRepository(pool *pgxpool.Pool) *AssistenceRepo {
	return &AssistenceRepo{pool: pool}
}

const assistenceColumns = `id, worker_id, worker_nombre, arrival_time, departure_time, fecha_creacion`

// Create inserta el registro de llegada. El índice único por (trabajadora,
// día civil de Bogotá) convierte la doble marcación concurrente en
// ErrAlreadyMarked en vez de dejar dos filas.
func (r *AssistenceRepo) Create(ctx context.Context, a *entity.Assistence) error {
	query := `
		INSERT INTO assistences (worker_id, worker_nombre, arrival_time, departure_time, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		a.WorkerID, a.WorkerNombre, a.ArrivalTime, a.DepartureTime, a.FechaCreacion,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolationOn(err, "assistences_worker_day_key") {
			return domain.ErrAlreadyMarked
		}
		return wrapErr("insert assistence", err)
	}
	return nil
}

// GetByID obtiene un registro por ID; (nil, nil) si no existe.
func (r *AssistenceRepo) GetByID(ctx context.Context, id int64) (*entity.Assistence, error) {
	query := `SELECT ` + assistenceColumns + ` FROM assistences WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get assistence by id")
}

// FindByWorkerAndDay busca el registro de la trabajadora cuyo arrival_time cae
// dentro del día civil de Bogotá indicado; (nil, nil) si ese día no marcó.
func (r *AssistenceRepo) FindByWorkerAndDay(ctx context.Context, workerID int64, day time.Time) (*entity.Assistence, error) {
	desde, hasta := rangoDia(day)
	query := `
		SELECT ` + assistenceColumns + `
		FROM assistences
		WHERE worker_id = $1 AND arrival_time >= $2 AND arrival_time < $3
		LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, workerID, desde, hasta), "find assistence by worker and day")
}

// ListByDay devuelve todos los registros del día civil indicado, por hora de llegada.
func (r *AssistenceRepo) ListByDay(ctx context.Context, day time.Time) ([]*entity.Assistence, error) {
	desde, hasta := rangoDia(day)
	query := `
		SELECT ` + assistenceColumns + `
		FROM assistences
		WHERE arrival_time >= $1 AND arrival_time < $2
		ORDER BY arrival_time`
	return r.list(ctx, query, desde, hasta)
}

// ListByWorker devuelve el historial de una trabajadora, reciente primero.
func (r *AssistenceRepo) ListByWorker(ctx context.Context, workerID int64) ([]*entity.Assistence, error) {
	query := `
		SELECT ` + assistenceColumns + `
		FROM assistences
		WHERE worker_id = $1
		ORDER BY arrival_time DESC`
	return r.list(ctx, query, workerID)
}

// StampDeparture estampa la salida con guarda contra la doble salida: el
// UPDATE solo aplica mientras departure_time siga en NULL, igual que el
// índice único respalda la doble llegada. Cero filas afectadas significa que
// otro proceso ya la registró.
func (r *AssistenceRepo) StampDeparture(ctx context.Context, id int64, salida time.Time) error {
	query := `
		UPDATE assistences
		SET departure_time = $2
		WHERE id = $1 AND departure_time IS NULL`
	tag, err := r.pool.Exec(ctx, query, id, salida)
	if err != nil {
		return wrapErr("stamp departure", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyDeparted
	}
	return nil
}

// rangoDia devuelve el intervalo [inicio, fin) del día civil de Bogotá que
// contiene el instante dado.
func rangoDia(t time.Time) (time.Time, time.Time) {
	inicio := bogota.DayOf(t)
	return inicio, inicio.Add(24 * time.Hour)
}

func (r *AssistenceRepo) scanOne(row pgx.Row, op string) (*entity.Assistence, error) {
	var a entity.Assistence
	err := row.Scan(&a.ID, &a.WorkerID, &a.WorkerNombre, &a.ArrivalTime, &a.DepartureTime, &a.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &a, nil
}

func (r *AssistenceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Assistence, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list assistences", err)
	}
	defer rows.Close()

	var out []*entity.Assistence
	for rows.Next() {
		var a entity.Assistence
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.WorkerNombre, &a.ArrivalTime, &a.DepartureTime, &a.FechaCreacion); err != nil {
			return nil, wrapErr("scan assistence", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
