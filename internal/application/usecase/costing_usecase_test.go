package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/pkg/bogota"
	"github.com/jhoicas/taller-api/pkg/config"
)

func costeoBase() config.CosteoConfig {
	return config.CosteoConfig{
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

func operariaActiva(t *testing.T, workers *fakeWorkerRepo, cedula string, salario int64) {
	t.Helper()
	require.NoError(t, workers.Create(context.Background(), &entity.Worker{
		Nombre:        "Op",
		Apellido:      cedula,
		Cedula:        cedula,
		Cargo:         entity.CargoOperaria,
		Salario:       decimal.NewFromInt(salario),
		Activo:        true,
		FechaCreacion: bogota.Now(),
	}))
}

func TestOperatingCost_SinTrabajadorasUsaConstantes(t *testing.T) {
	uc := usecase.NewCostingUseCase(newFakeWorkerRepo(), costeoBase())

	out, err := uc.OperatingCost(context.Background(), dto.PlantillaRequest{
		CantidadTrabajadoras: dto.FlexInt(2),
	})

	require.NoError(t, err)
	// Sin operarias en la base el salario sale de la configuración.
	assert.True(t, out.CostoTrabajadoras.Equal(decimal.NewFromInt(112000)))
	assert.True(t, out.CostoOperacion.Equal(decimal.NewFromInt(175000)),
		"112000 + 33000 gastos + 30000 arriendo")
	assert.NotEmpty(t, out.FechaHoraBogota)
}

func TestOperatingCost_PromedioVivoReemplazaConstante(t *testing.T) {
	workers := newFakeWorkerRepo()
	operariaActiva(t, workers, "c1", 60000)
	operariaActiva(t, workers, "c2", 80000)
	uc := usecase.NewCostingUseCase(workers, costeoBase())

	out, err := uc.OperatingCost(context.Background(), dto.PlantillaRequest{
		CantidadTrabajadoras: dto.FlexInt(1),
	})

	require.NoError(t, err)
	assert.True(t, out.CostoTrabajadoras.Equal(decimal.NewFromInt(70000)),
		"promedio de 60000 y 80000, no la constante 56000")
}

func TestBreakEven_PrecioCeroReportaInfinity(t *testing.T) {
	uc := usecase.NewCostingUseCase(newFakeWorkerRepo(), costeoBase())

	out, err := uc.BreakEven(context.Background(), dto.EquilibrioRequest{
		PlantillaRequest: dto.PlantillaRequest{CantidadTrabajadoras: dto.FlexInt(2)},
	})

	require.NoError(t, err)
	assert.Equal(t, "Infinity", out.PuntoEquilibrio,
		"precio 0 produce el centinela como cadena, no un número")
	assert.False(t, out.Alcanzable)
	assert.True(t, out.IngresosEquilibrio.IsZero())
}

func TestBreakEven_ConPrecioYUnidades(t *testing.T) {
	uc := usecase.NewCostingUseCase(newFakeWorkerRepo(), costeoBase())

	out, err := uc.BreakEven(context.Background(), dto.EquilibrioRequest{
		PlantillaRequest:   dto.PlantillaRequest{CantidadTrabajadoras: dto.FlexInt(2)},
		PrecioUnidad:       dto.FlexFloat(1000),
		UnidadesFabricadas: dto.FlexInt(200),
	})

	require.NoError(t, err)
	// Costo fijo 175000 / precio 1000 = 175 unidades.
	assert.Equal(t, "175.00", out.PuntoEquilibrio)
	assert.True(t, out.Alcanzable)
	require.NotNil(t, out.UtilidadNeta)
	assert.True(t, out.UtilidadNeta.Equal(decimal.NewFromInt(25000)), "200×1000 - 175000")
}

func TestProduction_CoercionYTotales(t *testing.T) {
	uc := usecase.NewCostingUseCase(newFakeWorkerRepo(), costeoBase())

	out := uc.Production(dto.ProduccionRequest{
		Lotes: []dto.LoteProduccion{
			{Tipo: "camiseta", Color: "rojo", Tallas: map[string]dto.FlexInt{"2": 5}},
			{Tipo: "camiseta", Color: "azul", Tallas: map[string]dto.FlexInt{"4": 5}},
		},
	})

	assert.Equal(t, 10, out.TotalUnidades)
	assert.Equal(t, 5, out.TotalesPorTalla["2"])
	assert.Equal(t, 5, out.TotalesPorTalla["4"])
	require.Len(t, out.ProduccionPorColor, 2)
	assert.Equal(t, "azul", out.ProduccionPorColor[0].Color, "ordenado por tipo y color")
}
