package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// FactoryHandler maneja el registro de talleres satélite.
type FactoryHandler struct {
	uc *usecase.FactoryUseCase
}

// NewFactoryHandler construye el handler.
func NewFactoryHandler(uc *usecase.FactoryUseCase) *FactoryHandler {
	return &FactoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar taller satélite
// @Tags         factories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFactoryRequest  true  "Datos del taller"
// @Success      201   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "document_id duplicado"
// @Router       /api/factories [post]
func (h *FactoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFactoryRequest
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
	return respondOK(c, fiber.StatusCreated, out, "taller registrado")
}

// GetByID godoc
// @Summary      Obtener taller por ID
// @Tags         factories
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del taller"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/factories/{id} [get]
func (h *FactoryHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar talleres
// @Tags         factories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/factories [get]
func (h *FactoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// Update godoc
// @Summary      Actualizar taller (parcial)
// @Tags         factories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del taller"
// @Param        body  body  dto.UpdateFactoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/factories/{id} [put]
func (h *FactoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	var in dto.UpdateFactoryRequest
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
	return respondOK(c, fiber.StatusOK, out, "taller actualizado")
}

// Delete godoc
// @Summary      Eliminar taller
// @Tags         factories
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del taller"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/factories/{id} [delete]
func (h *FactoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, nil, "taller eliminado")
}
