package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain/permission"
)

// UserHandler maneja la administración de usuarios del sistema.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "username duplicado"
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, out, "usuario creado")
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// List godoc
// @Summary      Listar usuarios (incluye inactivos)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListActive godoc
// @Summary      Listar usuarios activos
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/active [get]
func (h *UserHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "usuario actualizado")
}

// Deactivate godoc
// @Summary      Desactivar usuario (borrado lógico)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	if err := h.uc.Deactivate(c.Context(), int64(id)); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, nil, "usuario desactivado")
}

// Permissions godoc
// @Summary      Capacidades del rol autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/users/permissions [get]
func (h *UserHandler) Permissions(c *fiber.Ctx) error {
	rol := GetRol(c)
	return respondOK(c, fiber.StatusOK, fiber.Map{
		"rol":         rol,
		"capacidades": permission.Capabilities(rol),
	}, "")
}
