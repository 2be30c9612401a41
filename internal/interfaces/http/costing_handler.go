package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// CostingHandler maneja las calculadoras del taller: costo de operación,
// punto de equilibrio, justicia de pago y agregado de producción.
type CostingHandler struct {
	uc *usecase.CostingUseCase
}

// NewCostingHandler construye el handler.
func NewCostingHandler(uc *usecase.CostingUseCase) *CostingHandler {
	return &CostingHandler{uc: uc}
}

// OperatingCost godoc
// @Summary      Costo diario de operación
// @Tags         costing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlantillaRequest  true  "Plantilla de personal"
// @Success      200   {object}  dto.APIResponse
// @Router       /api/costing/operation [post]
func (h *CostingHandler) OperatingCost(c *fiber.Ctx) error {
	var in dto.PlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.OperatingCost(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// BreakEven godoc
// @Summary      Punto de equilibrio
// @Tags         costing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EquilibrioRequest  true  "Plantilla + precio y unidades"
// @Success      200   {object}  dto.APIResponse
// @Router       /api/costing/break-even [post]
func (h *CostingHandler) BreakEven(c *fiber.Ctx) error {
	var in dto.EquilibrioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.BreakEven(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, fiber.StatusOK, out, "")
}

// PaymentFairness godoc
// @Summary      Justicia de pago por lote
// @Tags         costing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JusticiaPagoRequest  true  "Tiempos y pago del lote"
// @Success      200   {object}  dto.APIResponse
// @Router       /api/costing/payment-fairness [post]
func (h *CostingHandler) PaymentFairness(c *fiber.Ctx) error {
	var in dto.JusticiaPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	return respondOK(c, fiber.StatusOK, h.uc.PaymentFairness(in), "")
}

// Production godoc
// @Summary      Agregado de producción por lote/color/talla
// @Tags         costing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduccionRequest  true  "Lotes reportados"
// @Success      200   {object}  dto.APIResponse
// @Router       /api/costing/production [post]
func (h *CostingHandler) Production(c *fiber.Ctx) error {
	var in dto.ProduccionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	return respondOK(c, fiber.StatusOK, h.uc.Production(in), "")
}
