package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

// Data de referência dos testes: 16 de janeiro de 2024, meio-dia
var testNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func saleOn(date time.Time, total float64, status domain.PaymentStatus, method domain.PaymentMethod) domain.SaleRecord {
	return domain.SaleRecord{
		ID:            "S-" + date.Format("20060102-150405"),
		Date:          date,
		FinalTotal:    total,
		PaymentMethod: method,
		PaymentStatus: status,
		CreatedAt:     date,
	}
}

func TestComputeSalesMetrics(t *testing.T) {
	tests := []struct {
		name        string
		sales       []domain.SaleRecord
		monthlyGoal float64
		validate    func(t *testing.T, m domain.SalesMetrics)
	}{
		{
			name: "Duas vendas no mês e uma cancelada - cancelada não entra em nenhum agregado",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodPix),
				saleOn(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), 200, domain.PaymentStatusPaid, domain.PaymentMethodCash),
				saleOn(time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC), 500, domain.PaymentStatusCancelled, domain.PaymentMethodPix),
			},
			monthlyGoal: 10000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 300.0, m.MonthTotal)
				assert.Equal(t, 150.0, m.AverageTicket)
				assert.Equal(t, 2, m.TotalSalesCount)
				assert.Equal(t, 0, m.PendingPayments.Count)
				assert.Equal(t, 3.0, m.GoalPercentage)
			},
		},
		{
			name: "Vendas do mês anterior e de hoje caem nos acumuladores certos",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC), 400, domain.PaymentStatusPaid, domain.PaymentMethodPix),
				saleOn(time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC), 50, domain.PaymentStatusPaid, domain.PaymentMethodPix),
				saleOn(time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), 150, domain.PaymentStatusPaid, domain.PaymentMethodBoleto),
			},
			monthlyGoal: 10000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 200.0, m.MonthTotal)
				assert.Equal(t, 400.0, m.LastMonthTotal)
				assert.Equal(t, 50.0, m.TodayTotal)
				assert.Equal(t, 3, m.TotalSalesCount)
			},
		},
		{
			name: "Pagamentos pendentes contam sobre todo o conjunto, inclusive fora do mês",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2023, 12, 28, 9, 0, 0, 0, time.UTC), 80, domain.PaymentStatusPending, domain.PaymentMethodBoleto),
				saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 120, domain.PaymentStatusPending, domain.PaymentMethodPix),
				saleOn(time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), 60, domain.PaymentStatusPaid, domain.PaymentMethodPix),
			},
			monthlyGoal: 10000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 2, m.PendingPayments.Count)
				assert.Equal(t, 200.0, m.PendingPayments.Value)
			},
		},
		{
			name: "Empate no histograma de métodos resolve pela ordem lexical",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodPix),
				saleOn(time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodCash),
			},
			monthlyGoal: 10000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, domain.PaymentMethodCash, m.TopPaymentMethod)
				assert.Equal(t, 1, m.PaymentMethodHistogram[domain.PaymentMethodPix])
				assert.Equal(t, 1, m.PaymentMethodHistogram[domain.PaymentMethodCash])
			},
		},
		{
			name: "Meta mensal zerada resulta em percentual 0, nunca em erro",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 300, domain.PaymentStatusPaid, domain.PaymentMethodPix),
			},
			monthlyGoal: 0,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 0.0, m.GoalPercentage)
			},
		},
		{
			name:        "Sem vendas o resultado é o estado zero",
			sales:       nil,
			monthlyGoal: 10000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 0.0, m.MonthTotal)
				assert.Equal(t, 0.0, m.AverageTicket)
				assert.Equal(t, 0, m.TotalSalesCount)
				assert.Equal(t, domain.PaymentMethod(""), m.TopPaymentMethod)
				assert.NotNil(t, m.PaymentMethodHistogram)
			},
		},
		{
			name: "Ultrapassar a meta não é limitado a 100 por cento",
			sales: []domain.SaleRecord{
				saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 1500, domain.PaymentStatusPaid, domain.PaymentMethodPix),
			},
			monthlyGoal: 1000,
			validate: func(t *testing.T, m domain.SalesMetrics) {
				assert.Equal(t, 150.0, m.GoalPercentage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeSalesMetrics(tt.sales, tt.monthlyGoal, testNow)
			tt.validate(t, result)
		})
	}
}

func TestComputeSalesMetrics_CancelledSaleIsNoOp(t *testing.T) {
	base := []domain.SaleRecord{
		saleOn(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), 100, domain.PaymentStatusPaid, domain.PaymentMethodPix),
		saleOn(time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC), 200, domain.PaymentStatusPaid, domain.PaymentMethodCash),
	}
	withCancelled := append(append([]domain.SaleRecord{}, base...),
		saleOn(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 999, domain.PaymentStatusCancelled, domain.PaymentMethodBoleto),
	)

	assert.Equal(t,
		ComputeSalesMetrics(base, 10000, testNow),
		ComputeSalesMetrics(withCancelled, 10000, testNow),
	)
}
