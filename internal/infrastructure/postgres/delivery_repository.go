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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliveryColumns = `id_delivery, owner, date, lot, type, color, rib, type_fabric, annotation,
	sz6_12, sz12_18, sz18_24, sz24_36, sz36_48,
	sz2, sz4, sz6, sz8, sz10, sz12, sz14, sz16, sz18,
	id_group, status, modified_at, modified_by`

// Create persiste un lote nuevo y asigna el ID generado.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.DeliveredPieces) error {
	query := `
		INSERT INTO delivered_pieces (owner, date, lot, type, color, rib, type_fabric, annotation,
			sz6_12, sz12_18, sz18_24, sz24_36, sz36_48,
			sz2, sz4, sz6, sz8, sz10, sz12, sz14, sz16, sz18,
			id_group, status, modified_at, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26)
		RETURNING id_delivery`
	err := r.pool.QueryRow(ctx, query,
		d.Owner, d.Date, d.Lot, d.Type, d.Color, d.Rib, d.TypeFabric, d.Annotation,
		d.Sz6_12, d.Sz12_18, d.Sz18_24, d.Sz24_36, d.Sz36_48,
		d.Sz2, d.Sz4, d.Sz6, d.Sz8, d.Sz10, d.Sz12, d.Sz14, d.Sz16, d.Sz18,
		d.IDGroup, d.Status, d.ModifiedAt, d.ModifiedBy,
	).Scan(&d.ID)
	if err != nil {
		return wrapErr("insert delivery", err)
	}
	return nil
}

// GetByID obtiene un lote por ID sin filtrar por status; (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*entity.DeliveredPieces, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivered_pieces WHERE id_delivery = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get delivery by id")
}

// Update sobreescribe el lote completo, incluido el sello de auditoría.
func (r *DeliveryRepo) Update(ctx context.Context, d *entity.DeliveredPieces) error {
	query := `
		UPDATE delivered_pieces
		SET owner = $2, date = $3, lot = $4, type = $5, color = $6, rib = $7,
		    type_fabric = $8, annotation = $9,
		    sz6_12 = $10, sz12_18 = $11, sz18_24 = $12, sz24_36 = $13, sz36_48 = $14,
		    sz2 = $15, sz4 = $16, sz6 = $17, sz8 = $18, sz10 = $19,
		    sz12 = $20, sz14 = $21, sz16 = $22, sz18 = $23,
		    id_group = $24, status = $25, modified_at = $26, modified_by = $27
		WHERE id_delivery = $1`
	tag, err := r.pool.Exec(ctx, query,
		d.ID, d.Owner, d.Date, d.Lot, d.Type, d.Color, d.Rib,
		d.TypeFabric, d.Annotation,
		d.Sz6_12, d.Sz12_18, d.Sz18_24, d.Sz24_36, d.Sz36_48,
		d.Sz2, d.Sz4, d.Sz6, d.Sz8, d.Sz10,
		d.Sz12, d.Sz14, d.Sz16, d.Sz18,
		d.IDGroup, d.Status, d.ModifiedAt, d.ModifiedBy,
	)
	if err != nil {
		return wrapErr("update delivery", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve todos los lotes, activos e inactivos.
func (r *DeliveryRepo) ListAll(ctx context.Context) ([]*entity.DeliveredPieces, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivered_pieces ORDER BY id_delivery`
	return r.list(ctx, query)
}

// ListActive devuelve solo los lotes activos.
func (r *DeliveryRepo) ListActive(ctx context.Context) ([]*entity.DeliveredPieces, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivered_pieces WHERE status = $1 ORDER BY id_delivery`
	return r.list(ctx, query, entity.StatusActive)
}

// ListActiveByGroup devuelve los lotes activos de un id_group.
func (r *DeliveryRepo) ListActiveByGroup(ctx context.Context, idGroup string) ([]*entity.DeliveredPieces, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM delivered_pieces
		WHERE status = $1 AND id_group = $2
		ORDER BY id_delivery`
	return r.list(ctx, query, entity.StatusActive, idGroup)
}

// ListOnePerGroup devuelve un lote activo por cada id_group, el de menor id.
func (r *DeliveryRepo) ListOnePerGroup(ctx context.Context) ([]*entity.DeliveredPieces, error) {
	query := `
		SELECT DISTINCT ON (id_group) ` + deliveryColumns + `
		FROM delivered_pieces
		WHERE status = $1
		ORDER BY id_group, id_delivery`
	return r.list(ctx, query, entity.StatusActive)
}

func (r *DeliveryRepo) scanOne(row pgx.Row, op string) (*entity.DeliveredPieces, error) {
	var d entity.DeliveredPieces
	if err := scanDelivery(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &d, nil
}

func (r *DeliveryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.DeliveredPieces, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list deliveries", err)
	}
	defer rows.Close()

	var out []*entity.DeliveredPieces
	for rows.Next() {
		var d entity.DeliveredPieces
		if err := scanDelivery(rows, &d); err != nil {
			return nil, wrapErr("scan delivery", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func scanDelivery(row pgx.Row, d *entity.DeliveredPieces) error {
	return row.Scan(
		&d.ID, &d.Owner, &d.Date, &d.Lot, &d.Type, &d.Color, &d.Rib, &d.TypeFabric, &d.Annotation,
		&d.Sz6_12, &d.Sz12_18, &d.Sz18_24, &d.Sz24_36, &d.Sz36_48,
		&d.Sz2, &d.Sz4, &d.Sz6, &d.Sz8, &d.Sz10, &d.Sz12, &d.Sz14, &d.Sz16, &d.Sz18,
		&d.IDGroup, &d.Status, &d.ModifiedAt, &d.ModifiedBy,
	)
}
