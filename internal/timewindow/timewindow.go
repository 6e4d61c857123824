// Package timewindow concentra os cálculos de fronteiras de calendário
// usados por todos os agregadores do dashboard. Todas as funções são puras:
// recebem o instante de referência em vez de consultar o relógio, para que
// cada refresh use um único "agora" e os testes sejam determinísticos.
package timewindow

import "time"

// DayKeyFormat é o formato das chaves de dia das séries
const DayKeyFormat = time.DateOnly

// StartOfDay retorna a meia-noite do dia de ref, no fuso de ref
func StartOfDay(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
}

// StartOfMonth retorna a meia-noite do primeiro dia do mês de ref,
// deslocado offsetMonths meses (negativo para meses anteriores)
func StartOfMonth(ref time.Time, offsetMonths int) time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return first.AddDate(0, offsetMonths, 0)
}

// EndOfMonth retorna o último instante antes do mês seguinte ao mês de ref
// deslocado offsetMonths meses
func EndOfMonth(ref time.Time, offsetMonths int) time.Time {
	return StartOfMonth(ref, offsetMonths+1).Add(-time.Nanosecond)
}

// LastNDays retorna as meias-noites dos últimos n dias terminando no dia de
// ref, do mais antigo para o mais recente
func LastNDays(ref time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}

	days := make([]time.Time, 0, n)
	start := StartOfDay(ref).AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}

	return days
}

// DaysBetween retorna o número de dias de calendário entre a e b (b - a).
// Horários dentro do mesmo dia não contam: a comparação é por dia.
func DaysBetween(a, b time.Time) int {
	aDay := StartOfDay(a.In(b.Location()))
	bDay := StartOfDay(b)
	return int(bDay.Sub(aDay).Hours() / 24)
}

// SameDay informa se a e b caem no mesmo dia de calendário
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
