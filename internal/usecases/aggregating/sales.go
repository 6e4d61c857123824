// Package aggregating contém os calculadores puros do dashboard. Cada
// calculador recebe apenas as coleções de registros de que precisa e o
// instante de referência do refresh; nenhum compartilha estado mutável.
// Vendas canceladas nunca entram em agregados de receita ou contagem, e
// todo denominador zero resolve para 0.
package aggregating

import (
	"sort"
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

// ComputeSalesMetrics calcula os indicadores financeiros sobre as vendas
// buscadas. monthlyGoal é a meta mensal configurada; now é o instante de
// referência do refresh, já no fuso de negócio.
func ComputeSalesMetrics(sales []domain.SaleRecord, monthlyGoal float64, now time.Time) domain.SalesMetrics {
	monthStart := timewindow.StartOfMonth(now, 0)
	nextMonthStart := timewindow.StartOfMonth(now, 1)
	lastMonthStart := timewindow.StartOfMonth(now, -1)

	metrics := domain.SalesMetrics{
		PaymentMethodHistogram: make(map[domain.PaymentMethod]int),
		MonthlyGoal:            monthlyGoal,
	}

	monthCount := 0

	for _, sale := range sales {
		if sale.PaymentStatus == domain.PaymentStatusPending {
			metrics.PendingPayments.Count++
			metrics.PendingPayments.Value += sale.FinalTotal
		}

		if sale.Cancelled() {
			continue
		}

		metrics.TotalSalesCount++

		inCurrentMonth := !sale.Date.Before(monthStart) && sale.Date.Before(nextMonthStart)
		inLastMonth := !sale.Date.Before(lastMonthStart) && sale.Date.Before(monthStart)

		if inCurrentMonth {
			metrics.MonthTotal += sale.FinalTotal
			metrics.PaymentMethodHistogram[sale.PaymentMethod]++
			monthCount++
		}

		if inLastMonth {
			metrics.LastMonthTotal += sale.FinalTotal
		}

		if timewindow.SameDay(sale.Date, now) {
			metrics.TodayTotal += sale.FinalTotal
		}
	}

	metrics.MonthTotal = utils.RoundWithTwoDecimalPlace(metrics.MonthTotal)
	metrics.LastMonthTotal = utils.RoundWithTwoDecimalPlace(metrics.LastMonthTotal)
	metrics.TodayTotal = utils.RoundWithTwoDecimalPlace(metrics.TodayTotal)
	metrics.PendingPayments.Value = utils.RoundWithTwoDecimalPlace(metrics.PendingPayments.Value)

	metrics.AverageTicket = utils.RoundWithTwoDecimalPlace(
		utils.SafeRatio(metrics.MonthTotal, float64(monthCount)),
	)

	metrics.TopPaymentMethod = topPaymentMethod(metrics.PaymentMethodHistogram)
	metrics.GoalPercentage = utils.SafePercentage(metrics.MonthTotal, monthlyGoal)

	return metrics
}

// topPaymentMethod escolhe a moda do histograma. Empates são resolvidos
// pela ordem lexical do método, para que o resultado seja determinístico.
func topPaymentMethod(histogram map[domain.PaymentMethod]int) domain.PaymentMethod {
	if len(histogram) == 0 {
		return ""
	}

	methods := make([]domain.PaymentMethod, 0, len(histogram))
	for method := range histogram {
		methods = append(methods, method)
	}

	sort.Slice(methods, func(i, j int) bool {
		if histogram[methods[i]] != histogram[methods[j]] {
			return histogram[methods[i]] > histogram[methods[j]]
		}
		return methods[i] < methods[j]
	})

	return methods[0]
}
