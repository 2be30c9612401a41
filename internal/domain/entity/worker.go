package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cargos conocidos del taller. Se usan como clave para promediar salarios
// en el cálculo de costo de operación.
const (
	CargoOperaria             = "operaria"
	CargoOperariaPrestaciones = "operaria_prestaciones"
	CargoAprendiz             = "aprendiz"
)

// Worker representa una trabajadora del taller. Nunca se elimina físicamente:
// el ciclo de vida termina con Activo=false.
type Worker struct {
	ID            int64
	Nombre        string
	Apellido      string
	Cedula        string // única
	Telefono      string
	Cargo         string
	Salario       decimal.Decimal
	Activo        bool
	FechaCreacion time.Time
	Email         string
	ReferenceID   string // código de barras del carnet; opcional
}

// NombreCompleto devuelve "Nombre Apellido" para mostrar en asistencia.
func (w *Worker) NombreCompleto() string {
	if w.Apellido == "" {
		return w.Nombre
	}
	return w.Nombre + " " + w.Apellido
}
