package usecase

import (
	"context"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain/costing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/bogota"
	"github.com/jhoicas/taller-api/pkg/config"
)

// CostingUseCase arma los parámetros del costeo y delega la aritmética al
// paquete costing. Los salarios salen del promedio en vivo de trabajadoras
// activas por cargo; si un cargo no tiene ninguna se usa la constante de la
// configuración (ese respaldo silencioso es comportamiento contractual).
type CostingUseCase struct {
	workers repository.WorkerRepository
	cfg     config.CosteoConfig
}

// NewCostingUseCase construye el caso de uso.
func NewCostingUseCase(workers repository.WorkerRepository, cfg config.CosteoConfig) *CostingUseCase {
	return &CostingUseCase{workers: workers, cfg: cfg}
}

// params arma los Params con los salarios vivos de la base de datos.
func (uc *CostingUseCase) params(ctx context.Context) (costing.Params, error) {
	p := costing.Params{
		SalarioOperaria:             uc.cfg.SalarioOperaria,
		SalarioOperariaPrestaciones: uc.cfg.SalarioOperariaPrestaciones,
		SalarioAprendiz:             uc.cfg.SalarioAprendiz,
		GastosFijos:                 uc.cfg.GastosFijos,
		ArriendoMensual:             uc.cfg.ArriendoMensual,
	}

	if avg, ok, err := uc.workers.AvgSalarioActivoPorCargo(ctx, entity.CargoOperaria); err != nil {
		return p, err
	} else if ok {
		p.SalarioOperaria = avg
	}
	if avg, ok, err := uc.workers.AvgSalarioActivoPorCargo(ctx, entity.CargoOperariaPrestaciones); err != nil {
		return p, err
	} else if ok {
		p.SalarioOperariaPrestaciones = avg
	}
	if avg, ok, err := uc.workers.AvgSalarioActivoPorCargo(ctx, entity.CargoAprendiz); err != nil {
		return p, err
	} else if ok {
		p.SalarioAprendiz = avg
	}

	return p, nil
}

// OperatingCost calcula el costo de operación diario para la plantilla dada.
func (uc *CostingUseCase) OperatingCost(ctx context.Context, in dto.PlantillaRequest) (*dto.CostoOperacionResponse, error) {
	p, err := uc.params(ctx)
	if err != nil {
		return nil, err
	}
	costo := costing.OperatingCost(p, costing.Plantilla{
		Operarias:             in.CantidadTrabajadoras.Int(),
		OperariasPrestaciones: in.CantidadTrabajadorasPrestaciones.Int(),
		Aprendices:            in.CantidadPracticantes.Int(),
	})
	return &dto.CostoOperacionResponse{
		CantidadTrabajadoras:             in.CantidadTrabajadoras.Int(),
		CantidadTrabajadorasPrestaciones: in.CantidadTrabajadorasPrestaciones.Int(),
		CantidadPracticantes:             in.CantidadPracticantes.Int(),
		CostoTrabajadoras:                costo.CostoOperarias,
		CostoTrabajadorasPrestaciones:    costo.CostoOperariasPrestaciones,
		CostoPracticantes:                costo.CostoAprendices,
		GastosFijos:                      costo.GastosFijos,
		GastosFijosTotal:                 costo.GastosFijosTotal,
		ArriendoDiario:                   costo.ArriendoDiario,
		CostoOperacion:                   costo.Total,
		FechaHoraBogota:                  bogota.Format(bogota.Now()),
	}, nil
}

// BreakEven calcula el punto de equilibrio sobre el mismo costo fijo del
// OperatingCost, más el resultado neto si llegaron unidades fabricadas.
func (uc *CostingUseCase) BreakEven(ctx context.Context, in dto.EquilibrioRequest) (*dto.EquilibrioResponse, error) {
	p, err := uc.params(ctx)
	if err != nil {
		return nil, err
	}
	costo := costing.OperatingCost(p, costing.Plantilla{
		Operarias:             in.CantidadTrabajadoras.Int(),
		OperariasPrestaciones: in.CantidadTrabajadorasPrestaciones.Int(),
		Aprendices:            in.CantidadPracticantes.Int(),
	})

	precio := decimal.NewFromFloat(in.PrecioUnidad.Float())
	eq := costing.BreakEven(costo.Total, precio, in.UnidadesFabricadas.Int())

	return &dto.EquilibrioResponse{
		CostoFijoTotal:     eq.CostoFijoTotal,
		PrecioUnidad:       eq.PrecioUnidad,
		PuntoEquilibrio:    formatearPunto(eq.Unidades),
		Alcanzable:         eq.Alcanzable,
		IngresosEquilibrio: eq.IngresosEquilibrio,
		UnidadesFabricadas: eq.UnidadesFabricadas,
		IngresosReales:     eq.IngresosReales,
		UtilidadNeta:       eq.UtilidadNeta,
		FechaHoraBogota:    bogota.Format(bogota.Now()),
	}, nil
}

// PaymentFairness es aritmética pura, sin persistencia.
func (uc *CostingUseCase) PaymentFairness(in dto.JusticiaPagoRequest) *dto.JusticiaPagoResponse {
	r := costing.PaymentFairness(
		decimal.NewFromFloat(in.TiempoUnitario.Float()),
		in.Cantidad.Int(),
		decimal.NewFromFloat(in.PagoLote.Float()),
		decimal.NewFromFloat(in.TarifaMinuto.Float()),
	)
	return &dto.JusticiaPagoResponse{
		TiempoTotal:        r.TiempoTotal,
		CostoReal:          r.CostoReal,
		PorcentajeJusticia: r.Porcentaje,
		FechaHoraBogota:    bogota.Format(bogota.Now()),
	}
}

// Production agrega la producción reportada por lotes/colores.
func (uc *CostingUseCase) Production(in dto.ProduccionRequest) *dto.ProduccionResponse {
	lotes := make([]costing.Lote, 0, len(in.Lotes))
	for _, l := range in.Lotes {
		tallas := make(map[string]int, len(l.Tallas))
		for talla, cantidad := range l.Tallas {
			tallas[talla] = cantidad.Int()
		}
		lotes = append(lotes, costing.Lote{Tipo: l.Tipo, Color: l.Color, Tallas: tallas})
	}

	resumen := costing.AggregateProduction(lotes)

	out := &dto.ProduccionResponse{
		ProduccionPorColor: make([]dto.LoteProduccionResponse, 0, len(resumen.Lotes)),
		TotalesPorTalla:    resumen.TotalesPorTalla,
		TotalUnidades:      resumen.TotalUnidades,
		FechaHoraBogota:    bogota.Format(bogota.Now()),
	}
	for _, l := range resumen.Lotes {
		out.ProduccionPorColor = append(out.ProduccionPorColor, dto.LoteProduccionResponse{
			Tipo:   l.Tipo,
			Color:  l.Color,
			Tallas: l.Tallas,
			Total:  l.Total,
		})
	}
	return out
}

// formatearPunto representa el punto de equilibrio: centinela "Infinity"
// cuando no es alcanzable, si no el número con dos decimales.
func formatearPunto(unidades float64) string {
	if math.IsInf(unidades, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(unidades, 'f', 2, 64)
}
