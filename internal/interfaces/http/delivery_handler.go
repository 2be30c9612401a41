package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// DeliveryHandler maneja las entregas de piezas de los talleres satélite.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrega de piezas
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	if in.ModifiedBy == "" {
		in.ModifiedBy = GetUsername(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, out, "entrega registrada")
}

// GetByID godoc
// @Summary      Obtener entrega por ID (activa o no)
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar entrega (parcial, re-estampa auditoría)
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/deliveries/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	if in.ModifiedBy == "" {
		in.ModifiedBy = GetUsername(c)
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "entrega actualizada")
}

// SoftDelete godoc
// @Summary      Desactivar entrega (borrado lógico auditado, idempotente)
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.SoftDeleteRequest  false  "Autor de la baja"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/deliveries/{id} [delete]
func (h *DeliveryHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	var in dto.SoftDeleteRequest
	// El cuerpo es opcional: sin autor explícito queda el username del token.
	_ = c.BodyParser(&in)
	if in.ModifiedBy == "" {
		in.ModifiedBy = GetUsername(c)
	}
	out, err := h.uc.SoftDelete(c.Context(), int64(id), in.ModifiedBy)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "entrega desactivada")
}

// ListAll godoc
// @Summary      Listar todas las entregas (activas e inactivas)
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/deliveries/all [get]
func (h *DeliveryHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListActive godoc
// @Summary      Listar entregas activas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListByGroup godoc
// @Summary      Entregas activas de un grupo
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id_group  path  string  true  "Identificador del grupo"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse  "grupo sin entregas activas"
// @Router       /api/deliveries/group/{id_group} [get]
func (h *DeliveryHandler) ListByGroup(c *fiber.Ctx) error {
	idGroup := c.Params("id_group")
	if idGroup == "" {
		return respondBadRequest(c, "id_group es requerido")
	}
	out, err := h.uc.ListByGroup(c.Context(), idGroup)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListOnePerGroup godoc
// @Summary      Una entrega activa por grupo (la de menor ID)
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/deliveries/groups [get]
func (h *DeliveryHandler) ListOnePerGroup(c *fiber.Ctx) error {
	out, err := h.uc.ListOnePerGroup(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}
