package bogota_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/taller-api/pkg/bogota"
)

func TestDayOf_TruncaAlDiaCivilDeBogota(t *testing.T) {
	// 03:30 UTC del 11 de marzo son las 22:30 del 10 en Bogotá (UTC-5).
	instante := time.Date(2025, 3, 11, 3, 30, 0, 0, time.UTC)

	dia := bogota.DayOf(instante)

	assert.Equal(t, 10, dia.Day())
	assert.Equal(t, 0, dia.Hour())
	assert.Equal(t, bogota.Location().String(), dia.Location().String())
}

func TestSameDay_CruceDeMedianoche(t *testing.T) {
	// 04:59 y 05:01 UTC caen en días civiles distintos en Bogotá: la
	// medianoche local es 05:00 UTC.
	antes := time.Date(2025, 3, 11, 4, 59, 0, 0, time.UTC)
	despues := time.Date(2025, 3, 11, 5, 1, 0, 0, time.UTC)

	assert.False(t, bogota.SameDay(antes, despues))
	assert.True(t, bogota.SameDay(despues, despues.Add(2*time.Hour)))
}

func TestFormat_FormatoDeVistas(t *testing.T) {
	// 19:05:09 UTC = 14:05:09 en Bogotá.
	instante := time.Date(2025, 3, 10, 19, 5, 9, 0, time.UTC)

	assert.Equal(t, "10/03/2025 - 02:05:09 PM", bogota.Format(instante))
}
