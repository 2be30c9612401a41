// Package bogota centraliza el reloj civil del taller. Todas las comparaciones
// de "hoy" (asistencia, auditoría de entregas) se hacen en America/Bogota sin
// importar la zona horaria del servidor, para que el comportamiento sea el
// mismo en cualquier región de despliegue.
package bogota

import (
	"sync"
	"time"
)

var (
	once sync.Once
	loc  *time.Location
)

// Location devuelve *time.Location de America/Bogota. Si la base de datos de
// zonas horarias no está disponible usa el offset fijo UTC-5 (Colombia no
// tiene horario de verano).
func Location() *time.Location {
	once.Do(func() {
		var err error
		loc, err = time.LoadLocation("America/Bogota")
		if err != nil {
			loc = time.FixedZone("America/Bogota", -5*60*60)
		}
	})
	return loc
}

// Now devuelve la hora actual en Bogotá.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today devuelve la fecha civil de hoy en Bogotá, truncada a medianoche.
func Today() time.Time {
	return DayOf(Now())
}

// DayOf trunca un instante a su fecha civil en Bogotá.
func DayOf(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

// SameDay indica si dos instantes caen en la misma fecha civil de Bogotá.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// Format devuelve la fecha y hora con el formato usado en las vistas del
// taller: dd/mm/yyyy - hh:mm:ss AM/PM.
func Format(t time.Time) string {
	return t.In(Location()).Format("02/01/2006 - 03:04:05 PM")
}
