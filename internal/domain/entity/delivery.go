package entity

import "time"

// Estados de un registro (pinneado como enum de dos valores en toda la app).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ModificadoPorDefecto es el autor de auditoría cuando el llamador no indica uno.
const ModificadoPorDefecto = "system"

// DeliveredPieces es un lote de piezas entregado por un taller satélite.
// El borrado es siempre lógico (status pasa de active a inactive) y cada
// mutación estampa ModifiedAt/ModifiedBy: es un rastro de auditoría, no un
// historial versionado.
type DeliveredPieces struct {
	ID         int64
	Owner      string
	Date       time.Time
	Lot        string
	Type       string
	Color      string
	Rib        string
	TypeFabric string
	Annotation string

	// Tallas por rango de meses
	Sz6_12  int
	Sz12_18 int
	Sz18_24 int
	Sz24_36 int
	Sz36_48 int

	// Tallas individuales 2 a 18
	Sz2  int
	Sz4  int
	Sz6  int
	Sz8  int
	Sz10 int
	Sz12 int
	Sz14 int
	Sz16 int
	Sz18 int

	IDGroup    string // agrupa registros producidos juntos; vacío = sin grupo
	Status     string // active | inactive
	ModifiedAt time.Time
	ModifiedBy string
}

// TotalUnidades suma todas las tallas del lote.
func (d *DeliveredPieces) TotalUnidades() int {
	return d.Sz6_12 + d.Sz12_18 + d.Sz18_24 + d.Sz24_36 + d.Sz36_48 +
		d.Sz2 + d.Sz4 + d.Sz6 + d.Sz8 + d.Sz10 + d.Sz12 + d.Sz14 + d.Sz16 + d.Sz18
}
