package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.FactoryRepository = (*FactoryRepo)(nil)

// FactoryRepo implementación del puerto FactoryRepository sobre PostgreSQL.
type FactoryRepo struct {
	pool *pgxpool.Pool
}

// NewFactoryRepository construye el adaptador de persistencia para talleres.
func NewFactoryRepository(pool *pgxpool.Pool) *FactoryRepo {
	return &FactoryRepo{pool: pool}
}

// Create persiste un taller nuevo y asigna el ID generado.
func (r *FactoryRepo) Create(ctx context.Context, f *entity.Factory) error {
	query := `INSERT INTO factories (owner, document_id) VALUES ($1, $2) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, f.Owner, f.DocumentID).Scan(&f.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert factory", err)
	}
	return nil
}

// GetByID obtiene un taller por ID; (nil, nil) si no existe.
func (r *FactoryRepo) GetByID(ctx context.Context, id int64) (*entity.Factory, error) {
	query := `SELECT id, owner, document_id FROM factories WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get factory by id")
}

// GetByDocumentID obtiene un taller por su documento; (nil, nil) si no existe.
func (r *FactoryRepo) GetByDocumentID(ctx context.Context, documentID string) (*entity.Factory, error) {
	query := `SELECT id, owner, document_id FROM factories WHERE document_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, documentID), "get factory by document_id")
}

// List devuelve todos los talleres registrados.
func (r *FactoryRepo) List(ctx context.Context) ([]*entity.Factory, error) {
	query := `SELECT id, owner, document_id FROM factories ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list factories", err)
	}
	defer rows.Close()

	var out []*entity.Factory
	for rows.Next() {
		var f entity.Factory
		if err := rows.Scan(&f.ID, &f.Owner, &f.DocumentID); err != nil {
			return nil, wrapErr("scan factory", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

// Update sobreescribe los datos del taller.
func (r *FactoryRepo) Update(ctx context.Context, f *entity.Factory) error {
	query := `UPDATE factories SET owner = $2, document_id = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, f.ID, f.Owner, f.DocumentID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("update factory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el taller. Es el único borrado físico del sistema: un taller
// no arrastra rastro de auditoría propio.
func (r *FactoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM factories WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete factory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FactoryRepo) scanOne(row pgx.Row, op string) (*entity.Factory, error) {
	var f entity.Factory
	if err := row.Scan(&f.ID, &f.Owner, &f.DocumentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &f, nil
}
