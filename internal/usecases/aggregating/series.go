package aggregating

import (
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

const lowStockTrendDays = 7

// ComputeDailySalesSeries monta a série diária de vendas para o período
// selecionado. Cada dia do intervalo aparece na série, mesmo sem vendas.
func ComputeDailySalesSeries(
	sales []domain.SaleRecord,
	period domain.PeriodFilter,
	now time.Time,
) domain.DailySalesSeries {
	days := timewindow.LastNDays(now, period.Days())

	totalByDay := make(map[string]float64, len(days))
	countByDay := make(map[string]int, len(days))

	for _, sale := range sales {
		if sale.Cancelled() {
			continue
		}

		// A chave do dia segue o fuso do dashboard, não o fuso gravado na venda
		key := sale.Date.In(now.Location()).Format(timewindow.DayKeyFormat)
		totalByDay[key] += sale.FinalTotal
		countByDay[key]++
	}

	series := make(domain.DailySalesSeries, 0, len(days))
	for _, day := range days {
		key := day.Format(timewindow.DayKeyFormat)
		series = append(series, domain.DailySalesPoint{
			Day:   key,
			Total: utils.RoundWithTwoDecimalPlace(totalByDay[key]),
			Count: countByDay[key],
		})
	}

	return series
}

// ComputeLowStockTrend projeta a contagem atual de produtos com estoque
// baixo sobre os últimos sete dias. Sem histórico de estoque persistido,
// a série é plana no valor corrente.
func ComputeLowStockTrend(products []domain.ProductRecord, now time.Time) domain.LowStockTrend {
	var lowStockCount int
	for _, product := range products {
		if product.Active && product.LowStock() {
			lowStockCount++
		}
	}

	days := timewindow.LastNDays(now, lowStockTrendDays)

	trend := make(domain.LowStockTrend, 0, len(days))
	for _, day := range days {
		trend = append(trend, domain.LowStockPoint{
			Day:   day.Format(timewindow.DayKeyFormat),
			Count: lowStockCount,
		})
	}

	return trend
}
