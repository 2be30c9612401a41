package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// AssistenceHandler maneja el control diario de asistencia.
type AssistenceHandler struct {
	uc *usecase.AssistenceUseCase
}

// NewAssistenceHandler construye el handler.
func NewAssistenceHandler(uc *usecase.AssistenceUseCase) *AssistenceHandler {
	return &AssistenceHandler{uc: uc}
}

// MarkArrival godoc
// @Summary      Marcar llegada por ID de trabajadora
// @Tags         assistences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarcarLlegadaRequest  true  "ID de la trabajadora"
// @Success      201   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "ya marcó hoy"
// @Router       /api/assistences/arrival [post]
func (h *AssistenceHandler) MarkArrival(c *fiber.Ctx) error {
	var in dto.MarcarLlegadaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.MarkArrival(c.Context(), in.WorkerID)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, out, "llegada registrada")
}

// MarkArrivalByCode godoc
// @Summary      Marcar llegada con el código de barras del carnet
// @Tags         assistences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarcarLlegadaCodigoRequest  true  "Código del carnet"
// @Success      201   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "ya marcó hoy"
// @Router       /api/assistences/arrival/code [post]
func (h *AssistenceHandler) MarkArrivalByCode(c *fiber.Ctx) error {
	var in dto.MarcarLlegadaCodigoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.MarkArrivalByCode(c.Context(), in.ReferenceID)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusCreated, out, "llegada registrada")
}

// MarkDeparture godoc
// @Summary      Marcar salida de un registro de asistencia
// @Tags         assistences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarcarSalidaRequest  true  "ID del registro"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "la salida ya fue registrada"
// @Router       /api/assistences/departure [post]
func (h *AssistenceHandler) MarkDeparture(c *fiber.Ctx) error {
	var in dto.MarcarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := validarBody(in); err != nil {
		return respondErr(c, err)
	}
	out, err := h.uc.MarkDeparture(c.Context(), in.AssistenceID)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "salida registrada")
}

// ListToday godoc
// @Summary      Asistencias del día civil de Bogotá
// @Tags         assistences
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/assistences/today [get]
func (h *AssistenceHandler) ListToday(c *fiber.Ctx) error {
	out, err := h.uc.ListToday(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// ListByWorker godoc
// @Summary      Historial de asistencia de una trabajadora
// @Tags         assistences
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la trabajadora"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/assistences/worker/{id} [get]
func (h *AssistenceHandler) ListByWorker(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "id inválido")
	}
	out, err := h.uc.ListByWorker(c.Context(), int64(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}
