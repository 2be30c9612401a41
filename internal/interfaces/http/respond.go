package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
)

// respondOK escribe el sobre de éxito con el código indicado.
func respondOK(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.OK(data, message))
}

// respondErr traduce un error de dominio al código de estado y escribe el
// sobre de error. Cualquier error no reconocido es un 500 genérico para no
// filtrar detalles internos.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	mensaje := "error interno del servidor"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		mensaje = err.Error()
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrAlreadyMarked),
		errors.Is(err, domain.ErrAlreadyDeparted):
		status = fiber.StatusConflict
		mensaje = err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
		mensaje = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		mensaje = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
		mensaje = err.Error()
	case errors.Is(err, domain.ErrServiceUnavailable):
		status = fiber.StatusServiceUnavailable
		mensaje = err.Error()
	}

	return c.Status(status).JSON(dto.Fail(mensaje))
}

// respondBadRequest escribe un 400 con el mensaje dado (cuerpos ilegibles,
// parámetros de ruta inválidos, validación).
func respondBadRequest(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(mensaje))
}
