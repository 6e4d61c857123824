package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

func TestComputeDailySalesSeries(t *testing.T) {
	sales := []domain.SaleRecord{
		saleOn(time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodPix),
		saleOn(time.Date(2024, 1, 16, 15, 0, 0, 0, time.UTC), 50, domain.PaymentStatusPaid, domain.PaymentMethodCash),
		saleOn(time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC), 30, domain.PaymentStatusPaid, domain.PaymentMethodPix),
		saleOn(time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC), 999, domain.PaymentStatusCancelled, domain.PaymentMethodPix),
		saleOn(time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC), 500, domain.PaymentStatusPaid, domain.PaymentMethodPix),
	}

	t.Run("Série semanal cobre todos os dias, inclusive os sem venda", func(t *testing.T) {
		series := ComputeDailySalesSeries(sales, domain.PeriodWeek, testNow)

		assert.Len(t, series, 7)
		assert.Equal(t, "2024-01-10", series[0].Day)
		assert.Equal(t, "2024-01-16", series[6].Day)

		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-16", Total: 150, Count: 2}, series[6])
		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-14", Total: 30, Count: 1}, series[4])
		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-15", Total: 0, Count: 0}, series[5])
	})

	t.Run("Período hoje gera um único ponto", func(t *testing.T) {
		series := ComputeDailySalesSeries(sales, domain.PeriodToday, testNow)

		assert.Len(t, series, 1)
		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-16", Total: 150, Count: 2}, series[0])
	})

	t.Run("Venda em UTC cai no dia do fuso do dashboard", func(t *testing.T) {
		saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
		nowSP := time.Date(2024, 1, 16, 12, 0, 0, 0, saoPaulo)

		// 01:00 UTC do dia 16 ainda é 22:00 do dia 15 em São Paulo
		crossMidnight := []domain.SaleRecord{
			saleOn(time.Date(2024, 1, 16, 1, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodPix),
		}

		series := ComputeDailySalesSeries(crossMidnight, domain.PeriodWeek, nowSP)

		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-15", Total: 100, Count: 1}, series[5])
		assert.Equal(t, domain.DailySalesPoint{Day: "2024-01-16", Total: 0, Count: 0}, series[6])
	})

	t.Run("Sem vendas a série mantém o tamanho do período com pontos zerados", func(t *testing.T) {
		series := ComputeDailySalesSeries(nil, domain.PeriodWeek, testNow)

		assert.Len(t, series, 7)
		for _, point := range series {
			assert.Equal(t, 0.0, point.Total)
			assert.Equal(t, 0, point.Count)
		}
	})
}

func TestComputeLowStockTrend(t *testing.T) {
	products := []domain.ProductRecord{
		{ID: "P1", Active: true, Stock: 2},
		{ID: "P2", Active: true, Stock: 5},
		{ID: "P3", Active: true, Stock: 0},  // sem estoque não é estoque baixo
		{ID: "P4", Active: true, Stock: 50},
	}

	trend := ComputeLowStockTrend(products, testNow)

	assert.Len(t, trend, 7)
	assert.Equal(t, "2024-01-10", trend[0].Day)
	assert.Equal(t, "2024-01-16", trend[6].Day)
	for _, point := range trend {
		assert.Equal(t, 2, point.Count)
	}
}
