package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

func TestStartOfDay(t *testing.T) {
	ref := time.Date(2024, 3, 15, 17, 42, 9, 123, saoPaulo)

	got := StartOfDay(ref)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, saoPaulo), got)
	assert.Equal(t, saoPaulo, got.Location())
}

func TestStartOfMonth(t *testing.T) {
	ref := time.Date(2024, 3, 15, 17, 42, 0, 0, saoPaulo)

	tests := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"mês corrente", 0, time.Date(2024, 3, 1, 0, 0, 0, 0, saoPaulo)},
		{"mês anterior", -1, time.Date(2024, 2, 1, 0, 0, 0, 0, saoPaulo)},
		{"virada de ano", -3, time.Date(2023, 12, 1, 0, 0, 0, 0, saoPaulo)},
		{"mês seguinte", 1, time.Date(2024, 4, 1, 0, 0, 0, 0, saoPaulo)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfMonth(ref, tt.offset))
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	ref := time.Date(2024, 2, 10, 8, 0, 0, 0, saoPaulo)

	got := EndOfMonth(ref, 0)

	// 2024 é bissexto: fevereiro termina no dia 29
	assert.Equal(t, 29, got.Day())
	assert.Equal(t, time.February, got.Month())
	assert.True(t, got.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, saoPaulo)))
}

func TestLastNDays(t *testing.T) {
	ref := time.Date(2024, 3, 15, 17, 0, 0, 0, saoPaulo)

	days := LastNDays(ref, 7)

	assert.Len(t, days, 7)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, saoPaulo), days[0])
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, saoPaulo), days[6])

	// Ordenado do mais antigo para o mais recente
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Before(days[i]))
	}

	assert.Empty(t, LastNDays(ref, 0))
	assert.Empty(t, LastNDays(ref, -3))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "mesmo dia em horários diferentes",
			a:    time.Date(2024, 3, 15, 1, 0, 0, 0, saoPaulo),
			b:    time.Date(2024, 3, 15, 23, 0, 0, 0, saoPaulo),
			want: 0,
		},
		{
			name: "três dias de diferença",
			a:    time.Date(2024, 3, 12, 23, 59, 0, 0, saoPaulo),
			b:    time.Date(2024, 3, 15, 0, 1, 0, 0, saoPaulo),
			want: 3,
		},
		{
			name: "ordem invertida é negativa",
			a:    time.Date(2024, 3, 15, 0, 0, 0, 0, saoPaulo),
			b:    time.Date(2024, 3, 13, 0, 0, 0, 0, saoPaulo),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 0, 30, 0, 0, saoPaulo)
	b := time.Date(2024, 3, 15, 22, 0, 0, 0, saoPaulo)
	c := time.Date(2024, 3, 16, 0, 0, 0, 0, saoPaulo)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
