package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

func clientSale(date time.Time, clientID string, total float64, status domain.PaymentStatus) domain.SaleRecord {
	return domain.SaleRecord{
		ID:            "S-" + clientID + "-" + date.Format("20060102"),
		Date:          date,
		FinalTotal:    total,
		PaymentStatus: status,
		ClientID:      &clientID,
		CreatedAt:     date,
	}
}

func TestComputeClientMetrics(t *testing.T) {
	clients := []domain.ClientRecord{
		{ID: "C1", Name: "Ana", Active: true, CreatedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "C2", Name: "Bruno", Active: true, CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "C3", Name: "Carla", Active: false, CreatedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name     string
		clients  []domain.ClientRecord
		sales    []domain.SaleRecord
		validate func(t *testing.T, m domain.ClientMetrics)
	}{
		{
			name:    "Contagens de ativos e de novos clientes do mês",
			clients: clients,
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, 2, m.TotalActiveClients)
				assert.Equal(t, 1, m.NewClientsThisMonth)
			},
		},
		{
			name:    "Compras do mês anterior deduplicam por cliente e excluem canceladas",
			clients: clients,
			sales: []domain.SaleRecord{
				clientSale(time.Date(2023, 12, 10, 9, 0, 0, 0, time.UTC), "C1", 100, domain.PaymentStatusPaid),
				clientSale(time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC), "C1", 50, domain.PaymentStatusPaid),
				clientSale(time.Date(2023, 12, 22, 9, 0, 0, 0, time.UTC), "C2", 80, domain.PaymentStatusCancelled),
				clientSale(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "C2", 80, domain.PaymentStatusPaid),
			},
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, 1, m.ClientsWithPurchasesLastMonth)
			},
		},
		{
			name:    "Clientes com pagamento pendente deduplicam por cliente",
			clients: clients,
			sales: []domain.SaleRecord{
				clientSale(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "C1", 100, domain.PaymentStatusPending),
				clientSale(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), "C1", 40, domain.PaymentStatusPending),
				clientSale(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), "C2", 40, domain.PaymentStatusPaid),
			},
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, 1, m.ClientsWithPendingPayments)
			},
		},
		{
			name:    "Ranking por volume soma vendas não canceladas e resolve nomes",
			clients: clients,
			sales: []domain.SaleRecord{
				clientSale(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "C1", 100, domain.PaymentStatusPaid),
				clientSale(time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC), "C1", 60, domain.PaymentStatusPaid),
				clientSale(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), "C2", 300, domain.PaymentStatusPaid),
				clientSale(time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC), "C2", 999, domain.PaymentStatusCancelled),
			},
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, []domain.RankedClient{
					{ClientID: "C2", ClientName: "Bruno", Total: 300, SalesCount: 1},
					{ClientID: "C1", ClientName: "Ana", Total: 160, SalesCount: 2},
				}, m.TopClientsByVolume)
			},
		},
		{
			name:    "Vendas sem cliente vinculado ficam fora dos indicadores de cliente",
			clients: clients,
			sales: []domain.SaleRecord{
				{
					ID:            "S-ANON",
					Date:          time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
					FinalTotal:    500,
					PaymentStatus: domain.PaymentStatusPending,
				},
			},
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, 0, m.ClientsWithPendingPayments)
				assert.Empty(t, m.TopClientsByVolume)
			},
		},
		{
			name: "Sem clientes e sem vendas o resultado é o estado zero",
			validate: func(t *testing.T, m domain.ClientMetrics) {
				assert.Equal(t, 0, m.TotalActiveClients)
				assert.NotNil(t, m.TopClientsByVolume)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeClientMetrics(tt.clients, tt.sales, testNow)
			tt.validate(t, result)
		})
	}
}

func TestRankClients_EmpateResolvePeloNome(t *testing.T) {
	ranked := rankClients(map[string]*domain.RankedClient{
		"C1": {ClientID: "C1", ClientName: "Bia", Total: 100, SalesCount: 1},
		"C2": {ClientID: "C2", ClientName: "Ana", Total: 100, SalesCount: 2},
	}, 5)

	assert.Equal(t, "Ana", ranked[0].ClientName)
	assert.Equal(t, "Bia", ranked[1].ClientName)
}
