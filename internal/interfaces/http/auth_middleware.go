package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain/permission"
	"github.com/jhoicas/taller-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRol      = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		userID, username, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequirePermission corta con 403 si el rol del token no tiene la capacidad.
// Va siempre después de AuthMiddleware.
func RequirePermission(capacidad string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !permission.Allowed(GetRol(c), capacidad) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("el rol no tiene permiso para esta operación"))
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRol devuelve el rol del contexto.
func GetRol(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRol).(string)
	return v
}
