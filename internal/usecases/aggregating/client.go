package aggregating

import (
	"sort"
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

const topClientsLimit = 5

// ComputeClientMetrics calcula os indicadores da base de clientes,
// cruzando clientes e vendas pelo client_id em memória.
func ComputeClientMetrics(
	clients []domain.ClientRecord,
	sales []domain.SaleRecord,
	now time.Time,
) domain.ClientMetrics {
	monthStart := timewindow.StartOfMonth(now, 0)
	lastMonthStart := timewindow.StartOfMonth(now, -1)

	metrics := domain.ClientMetrics{
		TopClientsByVolume: make([]domain.RankedClient, 0, topClientsLimit),
	}

	nameByID := make(map[string]string, len(clients))
	for _, client := range clients {
		nameByID[client.ID] = client.Name

		if client.Active {
			metrics.TotalActiveClients++
		}
		if !client.CreatedAt.Before(monthStart) {
			metrics.NewClientsThisMonth++
		}
	}

	// Conjuntos deduplicados por cliente
	purchasedLastMonth := make(map[string]struct{})
	withPending := make(map[string]struct{})
	volumeByID := make(map[string]*domain.RankedClient)

	for _, sale := range sales {
		if sale.ClientID == nil {
			continue
		}
		clientID := *sale.ClientID

		if sale.PaymentStatus == domain.PaymentStatusPending {
			withPending[clientID] = struct{}{}
		}

		if sale.Cancelled() {
			continue
		}

		if !sale.Date.Before(lastMonthStart) && sale.Date.Before(monthStart) {
			purchasedLastMonth[clientID] = struct{}{}
		}

		entry, exists := volumeByID[clientID]
		if !exists {
			entry = &domain.RankedClient{
				ClientID:   clientID,
				ClientName: nameByID[clientID],
			}
			volumeByID[clientID] = entry
		}
		entry.Total += sale.FinalTotal
		entry.SalesCount++
	}

	metrics.ClientsWithPurchasesLastMonth = len(purchasedLastMonth)
	metrics.ClientsWithPendingPayments = len(withPending)
	metrics.TopClientsByVolume = rankClients(volumeByID, topClientsLimit)

	return metrics
}

// rankClients ordena por volume decrescente com desempate lexical pelo
// nome e, por fim, pelo ID do cliente
func rankClients(volumeByID map[string]*domain.RankedClient, limit int) []domain.RankedClient {
	ranked := make([]domain.RankedClient, 0, len(volumeByID))
	for _, entry := range volumeByID {
		entry.Total = utils.RoundWithTwoDecimalPlace(entry.Total)
		ranked = append(ranked, *entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		if ranked[i].ClientName != ranked[j].ClientName {
			return ranked[i].ClientName < ranked[j].ClientName
		}
		return ranked[i].ClientID < ranked[j].ClientID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
