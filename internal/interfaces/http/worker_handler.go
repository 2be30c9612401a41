package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// WorkerHandler maneja las peticiones HTTP para la nómina de trabajadoras.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar trabajadora
// @Tags         workers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkerRequest  true  "Datos de la trabajadora"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/workers [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
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
	return respondOK(c, fiber.StatusCreated, out, "trabajadora registrada")
}

// GetByID godoc
// @Summary      Obtener trabajadora por ID
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la trabajadora"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/workers/{id} [get]
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar trabajadoras (incluye desactivadas)
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListActive godoc
// @Summary      Listar trabajadoras activas
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/workers/active [get]
func (h *WorkerHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// Update godoc
// @Summary      Actualizar trabajadora (parcial)
// @Tags         workers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la trabajadora"
// @Param        body  body  dto.UpdateWorkerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/workers/{id} [put]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	var in dto.UpdateWorkerRequest
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
	return respondOK(c, fiber.StatusOK, out, "trabajadora actualizada")
}

// Deactivate godoc
// @Summary      Desactivar trabajadora (borrado lógico)
// @Tags         workers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la trabajadora"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/workers/{id} [delete]
func (h *WorkerHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	if err := h.uc.Deactivate(c.Context(), int64(id)); err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, nil, "trabajadora desactivada")
}
