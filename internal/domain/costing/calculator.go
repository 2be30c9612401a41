// Package costing implementa los cálculos financieros del taller: costo de
// operación diario, punto de equilibrio, justicia de pago por lote y la
// agregación de producción por tallas. Son funciones puras y deterministas;
// la única entrada externa son los Params que llegan desde la configuración
// o desde el promedio de salarios en vivo.
package costing

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// diasMes es el divisor para pasar el arriendo mensual a diario.
var diasMes = decimal.NewFromInt(30)

// Params son las constantes del cálculo. Los salarios son por jornal diario.
// Se construyen desde la configuración y, cuando hay trabajadoras activas,
// el caso de uso reemplaza cada salario por el promedio real del cargo.
type Params struct {
	SalarioOperaria             decimal.Decimal
	SalarioOperariaPrestaciones decimal.Decimal
	SalarioAprendiz             decimal.Decimal
	GastosFijos                 map[string]decimal.Decimal
	ArriendoMensual             decimal.Decimal
}

// Plantilla es el conteo de personal del día.
type Plantilla struct {
	Operarias             int
	OperariasPrestaciones int
	Aprendices            int
}

// CostoOperacion es el desglose del costo diario de operar el taller.
type CostoOperacion struct {
	CostoOperarias             decimal.Decimal
	CostoOperariasPrestaciones decimal.Decimal
	CostoAprendices            decimal.Decimal
	GastosFijos                map[string]decimal.Decimal
	GastosFijosTotal           decimal.Decimal
	ArriendoDiario             decimal.Decimal
	Total                      decimal.Decimal
}

// OperatingCost calcula el costo de operación diario:
//
//	Σ(cantidad por cargo × salario del cargo) + Σ(gastos fijos) + arriendo/30
func OperatingCost(p Params, plantilla Plantilla) CostoOperacion {
	costoOperarias := p.SalarioOperaria.Mul(decimal.NewFromInt(int64(plantilla.Operarias)))
	costoPrestaciones := p.SalarioOperariaPrestaciones.Mul(decimal.NewFromInt(int64(plantilla.OperariasPrestaciones)))
	costoAprendices := p.SalarioAprendiz.Mul(decimal.NewFromInt(int64(plantilla.Aprendices)))

	gastosTotal := decimal.Zero
	gastos := make(map[string]decimal.Decimal, len(p.GastosFijos))
	for nombre, valor := range p.GastosFijos {
		gastos[nombre] = valor
		gastosTotal = gastosTotal.Add(valor)
	}

	arriendoDiario := p.ArriendoMensual.Div(diasMes)

	total := costoOperarias.
		Add(costoPrestaciones).
		Add(costoAprendices).
		Add(gastosTotal).
		Add(arriendoDiario)

	return CostoOperacion{
		CostoOperarias:             costoOperarias,
		CostoOperariasPrestaciones: costoPrestaciones,
		CostoAprendices:            costoAprendices,
		GastosFijos:                gastos,
		GastosFijosTotal:           gastosTotal,
		ArriendoDiario:             arriendoDiario,
		Total:                      total,
	}
}

// PuntoEquilibrio es el resultado del cálculo de equilibrio. Unidades es +Inf
// cuando el precio unitario es ≤ 0: es un centinela, no un error, y en ese
// caso IngresosEquilibrio se reporta como 0.
type PuntoEquilibrio struct {
	CostoFijoTotal     decimal.Decimal
	PrecioUnidad       decimal.Decimal
	Unidades           float64
	IngresosEquilibrio decimal.Decimal
	Alcanzable         bool

	// Resultado neto del día, solo cuando se reportaron unidades fabricadas.
	UnidadesFabricadas int
	IngresosReales     *decimal.Decimal
	UtilidadNeta       *decimal.Decimal
}

// BreakEven calcula el punto de equilibrio (unidades = costo fijo / precio) y,
// si unidadesFabricadas > 0, el resultado neto real del día.
func BreakEven(costoFijoTotal, precioUnidad decimal.Decimal, unidadesFabricadas int) PuntoEquilibrio {
	out := PuntoEquilibrio{
		CostoFijoTotal:     costoFijoTotal,
		PrecioUnidad:       precioUnidad,
		UnidadesFabricadas: unidadesFabricadas,
	}

	if precioUnidad.LessThanOrEqual(decimal.Zero) {
		out.Unidades = math.Inf(1)
		out.IngresosEquilibrio = decimal.Zero
	} else {
		out.Alcanzable = true
		out.Unidades = costoFijoTotal.Div(precioUnidad).InexactFloat64()
		// En el equilibrio los ingresos igualan el costo fijo por definición.
		out.IngresosEquilibrio = costoFijoTotal
	}

	if unidadesFabricadas > 0 {
		ingresos := precioUnidad.Mul(decimal.NewFromInt(int64(unidadesFabricadas)))
		utilidad := ingresos.Sub(costoFijoTotal)
		out.IngresosReales = &ingresos
		out.UtilidadNeta = &utilidad
	}

	return out
}

// JusticiaPago es el resultado de comparar el pago de un lote contra el costo
// real del tiempo invertido.
type JusticiaPago struct {
	TiempoTotal decimal.Decimal // minutos
	CostoReal   decimal.Decimal
	Porcentaje  decimal.Decimal // 100 = pago exactamente justo
}

// PaymentFairness calcula (pago lote / (tiempo unitario × cantidad × tarifa
// por minuto)) × 100. Con denominador 0 el porcentaje es 0, no un error.
func PaymentFairness(tiempoUnitario decimal.Decimal, cantidad int, pagoLote, tarifaMinuto decimal.Decimal) JusticiaPago {
	tiempoTotal := tiempoUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
	costoReal := tiempoTotal.Mul(tarifaMinuto)

	porcentaje := decimal.Zero
	if costoReal.GreaterThan(decimal.Zero) {
		porcentaje = pagoLote.Div(costoReal).Mul(decimal.NewFromInt(100))
	}

	return JusticiaPago{
		TiempoTotal: tiempoTotal,
		CostoReal:   costoReal,
		Porcentaje:  porcentaje,
	}
}

// Tallas es el orden canónico de columnas en reportes de producción.
var Tallas = []string{
	"6-12", "12-18", "18-24", "24-36", "36-48",
	"2", "4", "6", "8", "10", "12", "14", "16", "18",
}

// Lote es la entrada de producción de un color/lote.
type Lote struct {
	Tipo   string
	Color  string
	Tallas map[string]int
}

// LoteResumen es un lote con su total calculado.
type LoteResumen struct {
	Tipo   string
	Color  string
	Tallas map[string]int
	Total  int
}

// ResumenProduccion agrega la producción de varios lotes: totales por talla,
// gran total y los lotes ordenados por (tipo, color) sin distinguir
// mayúsculas (colación española).
type ResumenProduccion struct {
	Lotes           []LoteResumen
	TotalesPorTalla map[string]int
	TotalUnidades   int
}

// AggregateProduction suma las cantidades por talla de un número arbitrario
// de lotes. Acepta nombres de talla no canónicos (entran al total igual).
func AggregateProduction(lotes []Lote) ResumenProduccion {
	totales := make(map[string]int, len(Tallas))
	for _, t := range Tallas {
		totales[t] = 0
	}

	resumen := make([]LoteResumen, 0, len(lotes))
	granTotal := 0
	for _, l := range lotes {
		totalLote := 0
		tallas := make(map[string]int, len(l.Tallas))
		for talla, cantidad := range l.Tallas {
			if cantidad < 0 {
				cantidad = 0
			}
			tallas[talla] = cantidad
			totales[talla] += cantidad
			totalLote += cantidad
		}
		granTotal += totalLote
		resumen = append(resumen, LoteResumen{
			Tipo:   l.Tipo,
			Color:  l.Color,
			Tallas: tallas,
			Total:  totalLote,
		})
	}

	// Orden estable por (tipo, color) ignorando mayúsculas y acentos al
	// estilo español, para que la vista siempre liste igual.
	col := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(resumen, func(i, j int) bool {
		if c := col.CompareString(resumen[i].Tipo, resumen[j].Tipo); c != 0 {
			return c < 0
		}
		return col.CompareString(resumen[i].Color, resumen[j].Color) < 0
	})

	return ResumenProduccion{
		Lotes:           resumen,
		TotalesPorTalla: totales,
		TotalUnidades:   granTotal,
	}
}
