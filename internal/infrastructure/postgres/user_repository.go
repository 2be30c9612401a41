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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, password_hash, email, rol, estado`

// Create persiste un usuario nuevo y asigna el ID generado.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, email, rol, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query, u.Username, u.PasswordHash, u.Email, u.Rol, u.Estado).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get user by id")
}

// GetByUsername obtiene un usuario por username; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, username), "get user by username")
}

// List devuelve todos los usuarios, activos e inactivos.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.list(ctx, query)
}

// ListActive devuelve solo los usuarios con estado activo.
func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE estado = $1 ORDER BY id`
	return r.list(ctx, query, entity.StatusActive)
}

// Update sobreescribe el usuario completo, hash incluido.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, password_hash = $3, email = $4, rol = $5, estado = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.Email, u.Rol, u.Estado)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Rol, &u.Estado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &u, nil
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list users", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Rol, &u.Estado); err != nil {
			return nil, wrapErr("scan user", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
