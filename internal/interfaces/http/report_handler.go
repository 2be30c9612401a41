package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
)

// ReportHandler maneja la descarga del reporte de producción en PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductionPDF godoc
// @Summary      Descargar reporte de producción en PDF
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ProduccionRequest  true  "Lotes reportados"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/reports/production [post]
func (h *ReportHandler) ProductionPDF(c *fiber.Ctx) error {
	var in dto.ProduccionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	pdfBytes, filename, err := h.uc.ProductionPDF(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
