package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

func TestAssistence_EstadoDerivado(t *testing.T) {
	a := entity.Assistence{ArrivalTime: time.Now()}
	assert.Equal(t, entity.AsistenciaPresente, a.Estado())

	salida := a.ArrivalTime.Add(8 * time.Hour)
	a.DepartureTime = &salida
	assert.Equal(t, entity.AsistenciaSalio, a.Estado())
}

func TestAssistence_HorasTrabajadas(t *testing.T) {
	llegada := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre string
		salida time.Duration
		horas  float64
	}{
		{"jornada completa", 8 * time.Hour, 8.0},
		{"media hora extra", 8*time.Hour + 30*time.Minute, 8.5},
		{"redondeo a dos decimales", 7*time.Hour + 20*time.Minute, 7.33},
		{"un minuto", time.Minute, 0.02},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			salida := llegada.Add(c.salida)
			a := entity.Assistence{ArrivalTime: llegada, DepartureTime: &salida}

			horas, ok := a.HorasTrabajadas()
			assert.True(t, ok)
			assert.Equal(t, c.horas, horas)
		})
	}
}

func TestAssistence_SinSalidaNoHayHoras(t *testing.T) {
	a := entity.Assistence{ArrivalTime: time.Now()}

	horas, ok := a.HorasTrabajadas()
	assert.False(t, ok)
	assert.Zero(t, horas)
}
