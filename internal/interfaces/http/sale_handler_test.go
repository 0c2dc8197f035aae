package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam_FechaSinHora(t *testing.T) {
	got, dateOnly, err := parseDateParam("2026-03-15")

	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateParam_TimestampRFC3339(t *testing.T) {
	got, dateOnly, err := parseDateParam("2026-03-15T13:30:00Z")

	require.NoError(t, err)
	assert.False(t, dateOnly, "un timestamp con hora no debe expandirse a día completo")
	assert.Equal(t, time.Date(2026, 3, 15, 13, 30, 0, 0, time.UTC), got)
}

func TestParseDateParam_Invalido(t *testing.T) {
	for _, s := range []string{"", "15/03/2026", "2026-13-01"} {
		_, _, err := parseDateParam(s)
		assert.Error(t, err, "entrada %q", s)
	}
}

func TestParseDateParam_FinDeDiaSoloParaFechas(t *testing.T) {
	// Una fecha sin hora se expande hasta el último instante del día;
	// un timestamp explícito se usa tal cual como límite superior.
	to, dateOnly, err := parseDateParam("2026-03-15")
	require.NoError(t, err)
	require.True(t, dateOnly)
	endOfDay := to.Add(24*time.Hour - time.Nanosecond)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999999999, time.UTC), endOfDay)

	mid, dateOnly, err := parseDateParam("2026-03-15T12:00:00Z")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, 12, mid.Hour())
}
