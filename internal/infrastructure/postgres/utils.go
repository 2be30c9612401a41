package postgres

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/taller-api/internal/domain"
)

// Código SQLSTATE de unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// isUniqueViolationOn verifica la violación de un constraint único concreto,
// para distinguir índices cuando una tabla tiene más de uno.
func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == codeUniqueViolation &&
		pgErr.ConstraintName == constraint
}

// isConnectionError detecta fallos de conexión con la base (host inaccesible,
// red caída, timeout de dial) en cualquier punto de la cadena de errores.
func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapErr envuelve un error de la base anotando la operación. Los fallos de
// conexión se traducen a domain.ErrServiceUnavailable para que la capa HTTP
// responda 503 en lugar de un 500 genérico.
func wrapErr(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrServiceUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
