// Package pdf implementa la generación del reporte de producción en PDF.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha/hora Bogotá            │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Color | 6-12 … 36-48 | 2 … 18 | Total         │
//	│  (una fila por lote/color)                                   │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTALES: total por talla + TOTAL GENERAL                    │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/taller-api/internal/domain/costing"
	"github.com/jhoicas/taller-api/pkg/bogota"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Grid de 20 columnas: Tipo(2) + Color(2) + 14 tallas(1 c/u) + Total(2).
const gridSize = 20

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ProductionPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProductionPDF genera el reporte de producción y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProductionPDF(
	_ context.Context,
	resumen costing.ResumenProduccion,
	generadoEn time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Producción", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de lotes
	m.AddRows(tableHeaderRow())
	for _, r := range tableLoteRows(resumen.Lotes) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(resumen))
	m.AddRows(grandTotalRow(resumen.TotalUnidades))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha/hora de Bogotá (der).
func headerRow(generadoEn time.Time) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("REPORTE DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Totales por lote, color y talla", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(8).Add(
			text.New("Generado: "+bogota.Format(generadoEn), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera con una columna por talla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	cols := []core.Col{
		h("Tipo", 2, align.Left),
		h("Color", 2, align.Left),
	}
	for _, talla := range costing.Tallas {
		cols = append(cols, h(talla, 1, align.Center))
	}
	cols = append(cols, h("Total", 2, align.Right))
	return row.New(8).Add(cols...)
}

// tableLoteRows: una fila por lote/color, tallas en el orden canónico.
func tableLoteRows(lotes []costing.LoteResumen) []core.Row {
	result := make([]core.Row, 0, len(lotes))
	for _, l := range lotes {
		cols := []core.Col{
			col.New(2).Add(text.New(l.Tipo, props.Text{Size: 7, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(l.Color, props.Text{Size: 7, Align: align.Left, Top: 1})),
		}
		for _, talla := range costing.Tallas {
			cols = append(cols, col.New(1).Add(text.New(
				cantidadOVacio(l.Tallas[talla]),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)))
		}
		cols = append(cols, col.New(2).Add(text.New(
			strconv.Itoa(l.Total),
			props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1},
		)))
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// totalsRow: totales por talla alineados con las columnas de la tabla.
func totalsRow(resumen costing.ResumenProduccion) core.Row {
	cols := []core.Col{
		col.New(4).Add(text.New("TOTAL POR TALLA", props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Left,
			Color: colorPrimary, Top: 1,
		})),
	}
	for _, talla := range costing.Tallas {
		cols = append(cols, col.New(1).Add(text.New(
			strconv.Itoa(resumen.TotalesPorTalla[talla]),
			props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1},
		)))
	}
	cols = append(cols, col.New(2))
	return row.New(7).Add(cols...)
}

// grandTotalRow: total general de unidades.
func grandTotalRow(total int) core.Row {
	return row.New(10).Add(
		col.New(16),
		col.New(2).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
		col.New(2).Add(text.New(strconv.Itoa(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// cantidadOVacio deja la celda vacía cuando el lote no reporta esa talla.
func cantidadOVacio(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
