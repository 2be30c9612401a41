package dto

import "github.com/shopspring/decimal"

// PlantillaRequest conteo de personal para costo de operación y equilibrio.
// Los campos son FlexInt: valores no numéricos del formulario entran como 0.
type PlantillaRequest struct {
	CantidadTrabajadoras             FlexInt `json:"cantidad_trabajadoras"`
	CantidadTrabajadorasPrestaciones FlexInt `json:"cantidad_trabajadoras_prestaciones"`
	CantidadPracticantes             FlexInt `json:"cantidad_practicantes"`
}

// CostoOperacionResponse desglose del costo diario de operación.
type CostoOperacionResponse struct {
	CantidadTrabajadoras             int                        `json:"cantidad_trabajadoras"`
	CantidadTrabajadorasPrestaciones int                        `json:"cantidad_trabajadoras_prestaciones"`
	CantidadPracticantes             int                        `json:"cantidad_practicantes"`
	CostoTrabajadoras                decimal.Decimal            `json:"costo_trabajadoras"`
	CostoTrabajadorasPrestaciones    decimal.Decimal            `json:"costo_trabajadoras_prestaciones"`
	CostoPracticantes                decimal.Decimal            `json:"costo_practicantes"`
	GastosFijos                      map[string]decimal.Decimal `json:"gastos_fijos"`
	GastosFijosTotal                 decimal.Decimal            `json:"gastos_fijos_total"`
	ArriendoDiario                   decimal.Decimal            `json:"arriendo_diario"`
	CostoOperacion                   decimal.Decimal            `json:"costo_operacion"`
	FechaHoraBogota                  string                     `json:"fecha_hora_bogota"`
}

// EquilibrioRequest entrada del punto de equilibrio: plantilla + precio y
// unidades fabricadas (opcional).
type EquilibrioRequest struct {
	PlantillaRequest
	PrecioUnidad       FlexFloat `json:"precio_unidad"`
	UnidadesFabricadas FlexInt   `json:"unidades_fabricadas"`
}

// EquilibrioResponse resultado del punto de equilibrio. PuntoEquilibrio llega
// como cadena porque el centinela "+Inf" no es representable en JSON numérico.
type EquilibrioResponse struct {
	CostoFijoTotal     decimal.Decimal  `json:"costo_fijo_total"`
	PrecioUnidad       decimal.Decimal  `json:"precio_unidad"`
	PuntoEquilibrio    string           `json:"punto_equilibrio"`
	Alcanzable         bool             `json:"alcanzable"`
	IngresosEquilibrio decimal.Decimal  `json:"ingresos_equilibrio"`
	UnidadesFabricadas int              `json:"unidades_fabricadas"`
	IngresosReales     *decimal.Decimal `json:"ingresos_reales,omitempty"`
	UtilidadNeta       *decimal.Decimal `json:"utilidad_neta,omitempty"`
	FechaHoraBogota    string           `json:"fecha_hora_bogota"`
}

// JusticiaPagoRequest entrada de justicia de pago por lote.
type JusticiaPagoRequest struct {
	TiempoUnitario FlexFloat `json:"tiempo_unitario"` // minutos por pieza
	Cantidad       FlexInt   `json:"cantidad"`
	PagoLote       FlexFloat `json:"pago_lote"`
	TarifaMinuto   FlexFloat `json:"tarifa_minuto"`
}

// JusticiaPagoResponse resultado de justicia de pago.
type JusticiaPagoResponse struct {
	TiempoTotal        decimal.Decimal `json:"tiempo_total"`
	CostoReal          decimal.Decimal `json:"costo_real"`
	PorcentajeJusticia decimal.Decimal `json:"porcentaje_justicia"`
	FechaHoraBogota    string          `json:"fecha_hora_bogota"`
}

// LoteProduccion un color/lote del formulario de producción. Las tallas son
// un mapa de nombre de talla a cantidad, con la misma coerción FlexInt.
type LoteProduccion struct {
	Tipo   string             `json:"tipo"`
	Color  string             `json:"color" validate:"required,min=1"`
	Tallas map[string]FlexInt `json:"tallas"`
}

// ProduccionRequest entrada de la agregación de producción.
type ProduccionRequest struct {
	Lotes []LoteProduccion `json:"lotes" validate:"required,min=1,dive"`
}

// LoteProduccionResponse un lote con su total.
type LoteProduccionResponse struct {
	Tipo   string         `json:"tipo,omitempty"`
	Color  string         `json:"nombre"`
	Tallas map[string]int `json:"tallas"`
	Total  int            `json:"total"`
}

// ProduccionResponse totales por talla y gran total, con los lotes ordenados
// por (tipo, color).
type ProduccionResponse struct {
	ProduccionPorColor []LoteProduccionResponse `json:"produccion_por_color"`
	TotalesPorTalla    map[string]int           `json:"totales_por_talla"`
	TotalUnidades      int                      `json:"total_unidades"`
	FechaHoraBogota    string                   `json:"fecha_hora_bogota"`
}
