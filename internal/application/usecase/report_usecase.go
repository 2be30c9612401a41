package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain/costing"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// ProductionPDFGenerator es el puerto hacia el generador de PDF. La
// implementación vive en infrastructure/pdf.
type ProductionPDFGenerator interface {
	GenerateProductionPDF(ctx context.Context, resumen costing.ResumenProduccion, generadoEn time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte de producción descargable. Recibe el mismo
// payload que el cálculo de producción: el cliente manda lo que tiene en
// pantalla y descarga el PDF equivalente.
type ReportUseCase struct {
	generator ProductionPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(generator ProductionPDFGenerator) *ReportUseCase {
	return &ReportUseCase{generator: generator}
}

// ProductionPDF agrega la producción y genera el PDF.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ReportUseCase) ProductionPDF(ctx context.Context, in dto.ProduccionRequest) ([]byte, string, error) {
	lotes := make([]costing.Lote, 0, len(in.Lotes))
	for _, l := range in.Lotes {
		tallas := make(map[string]int, len(l.Tallas))
		for talla, cantidad := range l.Tallas {
			tallas[talla] = cantidad.Int()
		}
		lotes = append(lotes, costing.Lote{Tipo: l.Tipo, Color: l.Color, Tallas: tallas})
	}

	resumen := costing.AggregateProduction(lotes)
	ahora := bogota.Now()

	pdfBytes, err := uc.generator.GenerateProductionPDF(ctx, resumen, ahora)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de producción: %w", err)
	}

	filename := fmt.Sprintf("produccion_%s.pdf", ahora.Format("02-01-2006"))
	return pdfBytes, filename, nil
}
