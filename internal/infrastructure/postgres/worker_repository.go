package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadoras.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

const workerColumns = `id, nombre, apellido, cedula, telefono, cargo, salario, activo, fecha_creacion, email, reference_id`

// Create persiste una trabajadora nueva y asigna el ID generado.
func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	query := `
		INSERT INTO workers (nombre, apellido, cedula, telefono, cargo, salario, activo, fecha_creacion, email, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		w.Nombre, w.Apellido, w.Cedula, w.Telefono, w.Cargo, w.Salario,
		w.Activo, w.FechaCreacion, w.Email, w.ReferenceID,
	).Scan(&w.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert worker", err)
	}
	return nil
}

// GetByID obtiene una trabajadora por ID; (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(ctx context.Context, id int64) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get worker by id")
}

// GetByReferenceID busca por el código de barras del carnet; (nil, nil) si no existe.
func (r *WorkerRepo) GetByReferenceID(ctx context.Context, referenceID string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE reference_id = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, referenceID), "get worker by reference_id")
}

// List devuelve la nómina completa, incluidas las desactivadas.
func (r *WorkerRepo) List(ctx context.Context) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY id`
	return r.list(ctx, query)
}

// ListActive devuelve solo las trabajadoras activas.
func (r *WorkerRepo) ListActive(ctx context.Context) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE activo ORDER BY id`
	return r.list(ctx, query)
}

// Update sobreescribe la trabajadora completa (la cédula incluida: el
// constraint único la protege).
func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	query := `
		UPDATE workers
		SET nombre = $2, apellido = $3, cedula = $4, telefono = $5, cargo = $6,
		    salario = $7, activo = $8, email = $9, reference_id = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		w.ID, w.Nombre, w.Apellido, w.Cedula, w.Telefono, w.Cargo,
		w.Salario, w.Activo, w.Email, w.ReferenceID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("update worker", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AvgSalarioActivoPorCargo promedia el salario de las activas del cargo.
// ok=false cuando no hay ninguna y el costeo debe usar la constante.
func (r *WorkerRepo) AvgSalarioActivoPorCargo(ctx context.Context, cargo string) (decimal.Decimal, bool, error) {
	query := `SELECT AVG(salario) FROM workers WHERE activo AND cargo = $1`
	var avg *decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, cargo).Scan(&avg); err != nil {
		return decimal.Zero, false, wrapErr("avg salario por cargo", err)
	}
	if avg == nil {
		return decimal.Zero, false, nil
	}
	return *avg, true, nil
}

func (r *WorkerRepo) scanOne(row pgx.Row, op string) (*entity.Worker, error) {
	var w entity.Worker
	err := row.Scan(
		&w.ID, &w.Nombre, &w.Apellido, &w.Cedula, &w.Telefono, &w.Cargo,
		&w.Salario, &w.Activo, &w.FechaCreacion, &w.Email, &w.ReferenceID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &w, nil
}

func (r *WorkerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Worker, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list workers", err)
	}
	defer rows.Close()

	var out []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(
			&w.ID, &w.Nombre, &w.Apellido, &w.Cedula, &w.Telefono, &w.Cargo,
			&w.Salario, &w.Activo, &w.FechaCreacion, &w.Email, &w.ReferenceID,
		); err != nil {
			return nil, wrapErr("scan worker", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
