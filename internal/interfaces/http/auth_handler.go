package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/dto"
)

// AuthHandler maneja el login de usuarios y el login alterno de talleres.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login de usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "bienvenido")
}

// LoginFactory godoc
// @Summary      Login de taller satélite por documento
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FactoryLoginRequest  true  "Documento del taller"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Router       /api/auth/login/factory [post]
func (h *AuthHandler) LoginFactory(c *fiber.Ctx) error {
	var in dto.FactoryLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.LoginFactory(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "bienvenido")
}
