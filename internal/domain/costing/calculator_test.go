package costing_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/domain/costing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// paramsBase son los valores de configuración por defecto del taller.
func paramsBase() costing.Params {
	return costing.Params{
		SalarioOperaria:             decimal.NewFromInt(56000),
		SalarioOperariaPrestaciones: decimal.NewFromInt(72000),
		SalarioAprendiz:             decimal.NewFromInt(35000),
		GastosFijos: map[string]decimal.Decimal{
			"hilos":    decimal.NewFromInt(10000),
			"luz":      decimal.NewFromInt(15000),
			"maquinas": decimal.NewFromInt(8000),
		},
		ArriendoMensual: decimal.NewFromInt(900000),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// OperatingCost
// ──────────────────────────────────────────────────────────────────────────────

func TestOperatingCost_DesgloseCompleto(t *testing.T) {
	out := costing.OperatingCost(paramsBase(), costing.Plantilla{
		Operarias:             2,
		OperariasPrestaciones: 1,
		Aprendices:            1,
	})

	assert.True(t, out.CostoOperarias.Equal(dec(112000)), "2 operarias × 56000")
	assert.True(t, out.CostoOperariasPrestaciones.Equal(dec(72000)))
	assert.True(t, out.CostoAprendices.Equal(dec(35000)))
	assert.True(t, out.GastosFijosTotal.Equal(dec(33000)), "hilos + luz + máquinas")
	assert.True(t, out.ArriendoDiario.Equal(dec(30000)), "900000 / 30")
	assert.True(t, out.Total.Equal(dec(282000)))
}

func TestOperatingCost_PlantillaVacia(t *testing.T) {
	out := costing.OperatingCost(paramsBase(), costing.Plantilla{})

	// Sin personal el costo es solo gastos fijos + arriendo diario.
	assert.True(t, out.Total.Equal(dec(63000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// BreakEven
// ──────────────────────────────────────────────────────────────────────────────

func TestBreakEven_Alcanzable(t *testing.T) {
	out := costing.BreakEven(dec(600000), dec(1000), 0)

	assert.True(t, out.Alcanzable)
	assert.Equal(t, 600.0, out.Unidades, "600000 / 1000")
	assert.True(t, out.IngresosEquilibrio.Equal(dec(600000)),
		"en el equilibrio los ingresos igualan el costo fijo")
	assert.Nil(t, out.IngresosReales, "sin unidades fabricadas no hay resultado neto")
	assert.Nil(t, out.UtilidadNeta)
}

func TestBreakEven_PrecioCero_Centinela(t *testing.T) {
	out := costing.BreakEven(dec(600000), decimal.Zero, 0)

	assert.False(t, out.Alcanzable)
	assert.True(t, math.IsInf(out.Unidades, 1), "precio ≤ 0 produce el centinela +Inf")
	assert.True(t, out.IngresosEquilibrio.IsZero())
}

func TestBreakEven_PrecioNegativo_Centinela(t *testing.T) {
	out := costing.BreakEven(dec(600000), dec(-50), 0)

	assert.False(t, out.Alcanzable)
	assert.True(t, math.IsInf(out.Unidades, 1))
}

func TestBreakEven_ResultadoNetoDelDia(t *testing.T) {
	out := costing.BreakEven(dec(600000), dec(1000), 700)

	require.NotNil(t, out.IngresosReales)
	require.NotNil(t, out.UtilidadNeta)
	assert.True(t, out.IngresosReales.Equal(dec(700000)))
	assert.True(t, out.UtilidadNeta.Equal(dec(100000)), "700000 - 600000")
}

func TestBreakEven_PerdidaDelDia(t *testing.T) {
	out := costing.BreakEven(dec(600000), dec(1000), 500)

	require.NotNil(t, out.UtilidadNeta)
	assert.True(t, out.UtilidadNeta.Equal(dec(-100000)), "la utilidad puede ser negativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// PaymentFairness
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentFairness_PagoJusto(t *testing.T) {
	// 2 min/pieza × 100 piezas × $100/min = $20000 de costo real.
	out := costing.PaymentFairness(dec(2), 100, dec(20000), dec(100))

	assert.True(t, out.TiempoTotal.Equal(dec(200)))
	assert.True(t, out.CostoReal.Equal(dec(20000)))
	assert.True(t, out.Porcentaje.Equal(dec(100)), "pago exactamente justo")
}

func TestPaymentFairness_PagoInsuficiente(t *testing.T) {
	out := costing.PaymentFairness(dec(2), 100, dec(10000), dec(100))

	assert.True(t, out.Porcentaje.Equal(dec(50)))
}

func TestPaymentFairness_DenominadorCero(t *testing.T) {
	// Cantidad 0 anula el denominador: el porcentaje es 0, nunca una división
	// por cero.
	out := costing.PaymentFairness(dec(2), 0, dec(20000), dec(100))

	assert.True(t, out.Porcentaje.IsZero())
	assert.True(t, out.CostoReal.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateProduction
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateProduction_TotalesPorTalla(t *testing.T) {
	out := costing.AggregateProduction([]costing.Lote{
		{Tipo: "camiseta", Color: "rojo", Tallas: map[string]int{"2": 5}},
		{Tipo: "camiseta", Color: "azul", Tallas: map[string]int{"4": 5}},
	})

	assert.Equal(t, 5, out.TotalesPorTalla["2"])
	assert.Equal(t, 5, out.TotalesPorTalla["4"])
	assert.Equal(t, 0, out.TotalesPorTalla["6-12"], "las tallas sin producción quedan en 0")
	assert.Equal(t, 10, out.TotalUnidades)
}

func TestAggregateProduction_CantidadesNegativasQuedanEnCero(t *testing.T) {
	out := costing.AggregateProduction([]costing.Lote{
		{Tipo: "body", Color: "blanco", Tallas: map[string]int{"6-12": -3, "12-18": 7}},
	})

	assert.Equal(t, 0, out.TotalesPorTalla["6-12"])
	assert.Equal(t, 7, out.TotalUnidades)
	require.Len(t, out.Lotes, 1)
	assert.Equal(t, 7, out.Lotes[0].Total)
}

func TestAggregateProduction_OrdenPorTipoYColor(t *testing.T) {
	out := costing.AggregateProduction([]costing.Lote{
		{Tipo: "Pantalón", Color: "verde", Tallas: map[string]int{"8": 1}},
		{Tipo: "body", Color: "Rojo", Tallas: map[string]int{"2": 1}},
		{Tipo: "body", Color: "azul", Tallas: map[string]int{"4": 1}},
	})

	require.Len(t, out.Lotes, 3)
	// Orden (tipo, color) sin distinguir mayúsculas: body/azul, body/Rojo,
	// Pantalón/verde.
	assert.Equal(t, "azul", out.Lotes[0].Color)
	assert.Equal(t, "Rojo", out.Lotes[1].Color)
	assert.Equal(t, "Pantalón", out.Lotes[2].Tipo)
}

func TestAggregateProduction_SinLotes(t *testing.T) {
	out := costing.AggregateProduction(nil)

	assert.Equal(t, 0, out.TotalUnidades)
	assert.Empty(t, out.Lotes)
	assert.Equal(t, 0, out.TotalesPorTalla["18"], "el mapa trae todas las tallas canónicas")
}
