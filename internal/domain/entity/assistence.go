package entity

import "time"

// Estados derivados de un registro de asistencia del día.
const (
	AsistenciaPresente = "Presente"
	AsistenciaSalio    = "Salió"
)

// Assistence es el registro diario de llegada/salida de una trabajadora.
// WorkerID es la relación explícita con Worker; WorkerNombre se captura al
// marcar la llegada solo para mostrar sin join.
//
// Invariantes: a lo sumo un registro por trabajadora por día civil de Bogotá
// (respaldado por índice único en la tabla) y una sola salida por llegada.
type Assistence struct {
	ID            int64
	WorkerID      int64
	WorkerNombre  string
	ArrivalTime   time.Time
	DepartureTime *time.Time
	FechaCreacion time.Time
}

// Estado devuelve el estado derivado del registro.
func (a *Assistence) Estado() string {
	if a.DepartureTime != nil {
		return AsistenciaSalio
	}
	return AsistenciaPresente
}

// HorasTrabajadas devuelve las horas entre llegada y salida redondeadas a dos
// decimales, y false si todavía no hay salida registrada.
func (a *Assistence) HorasTrabajadas() (float64, bool) {
	if a.DepartureTime == nil {
		return 0, false
	}
	horas := a.DepartureTime.Sub(a.ArrivalTime).Seconds() / 3600
	return float64(int64(horas*100+0.5)) / 100, true
}
