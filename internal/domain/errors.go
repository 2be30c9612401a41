package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los servicios devuelven
// estos centinelas y la capa HTTP los traduce a códigos de estado.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAlreadyMarked      = errors.New("la trabajadora ya fue marcada hoy")
	ErrAlreadyDeparted    = errors.New("la salida ya fue registrada")
	ErrServiceUnavailable = errors.New("base de datos no disponible")
)
