// Package alerting avalia as regras de alerta do dashboard sobre o estado
// atual dos registros. O avaliador não guarda estado: cada refresh
// descarta a lista anterior e reavalia tudo do zero.
package alerting

import (
	"fmt"
	"sort"
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

// Evaluate percorre as regras de alerta sobre vendas e produtos e devolve
// o feed priorizado por severidade. Cada regra disparada emite no máximo
// um alerta, levando a contagem de registros e a referência de navegação.
// Lista vazia é o estado válido de "tudo certo".
func Evaluate(sales []domain.SaleRecord, products []domain.ProductRecord, now time.Time) []domain.Alert {
	counters := countTriggers(sales, products, now)

	alerts := make([]domain.Alert, 0, 6)

	if counters.outOfStock > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityCritical,
			"Produtos sem estoque",
			fmt.Sprintf("%d produto(s) ativo(s) com estoque zerado", counters.outOfStock),
			counters.outOfStock,
			domain.AlertActionOutOfStockProducts,
		))
	}

	if counters.deliveryProblems > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityCritical,
			"Entregas com problema",
			fmt.Sprintf("%d entrega(s) cancelada(s) ou sem estoque", counters.deliveryProblems),
			counters.deliveryProblems,
			domain.AlertActionDeliveryProblems,
		))
	}

	if counters.pendingPayments > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityWarning,
			"Pagamentos pendentes",
			fmt.Sprintf("%d venda(s) aguardando pagamento", counters.pendingPayments),
			counters.pendingPayments,
			domain.AlertActionPendingPayments,
		))
	}

	if counters.delayedDeliveries > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityWarning,
			"Entregas atrasadas",
			fmt.Sprintf("%d entrega(s) além da janela de %d dias", counters.delayedDeliveries, domain.DeliverySLADays),
			counters.delayedDeliveries,
			domain.AlertActionDelayedDeliveries,
		))
	}

	if counters.lowStock > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityWarning,
			"Estoque baixo",
			fmt.Sprintf("%d produto(s) ativo(s) com até %d unidades", counters.lowStock, domain.LowStockThreshold),
			counters.lowStock,
			domain.AlertActionLowStockProducts,
		))
	}

	if counters.unreadDeliveries > 0 {
		alerts = append(alerts, newAlert(
			domain.AlertSeverityInfo,
			"Entregas não visualizadas",
			fmt.Sprintf("%d entrega(s) ainda não visualizada(s)", counters.unreadDeliveries),
			counters.unreadDeliveries,
			domain.AlertActionUnreadDeliveries,
		))
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return domain.LessSevere(alerts[j].Severity, alerts[i].Severity)
	})

	return alerts
}

type triggerCounters struct {
	outOfStock        int
	lowStock          int
	pendingPayments   int
	deliveryProblems  int
	delayedDeliveries int
	unreadDeliveries  int
}

func countTriggers(sales []domain.SaleRecord, products []domain.ProductRecord, now time.Time) triggerCounters {
	var counters triggerCounters

	for _, product := range products {
		if !product.Active {
			continue
		}
		if product.OutOfStock() {
			counters.outOfStock++
		}
		if product.LowStock() {
			counters.lowStock++
		}
	}

	for _, sale := range sales {
		if sale.PaymentStatus == domain.PaymentStatusPending {
			counters.pendingPayments++
		}

		if !sale.IsDelivery {
			continue
		}

		switch sale.DeliveryStatus {
		case domain.DeliveryStatusCancelled, domain.DeliveryStatusOutOfStock:
			counters.deliveryProblems++
		case domain.DeliveryStatusUnread:
			counters.unreadDeliveries++
		}

		terminal := sale.DeliveryStatus == domain.DeliveryStatusDelivered ||
			sale.DeliveryStatus == domain.DeliveryStatusCancelled
		if !terminal && timewindow.DaysBetween(sale.CreatedAt, now) > domain.DeliverySLADays {
			counters.delayedDeliveries++
		}
	}

	return counters
}

func newAlert(severity domain.AlertSeverity, title, message string, count int, actionRef string) domain.Alert {
	id, err := utils.GenerateID()
	if err != nil {
		// A referência de ação é estável por regra e serve de fallback
		id = actionRef
	}

	return domain.Alert{
		ID:        id,
		Severity:  severity,
		Title:     title,
		Message:   message,
		Count:     count,
		ActionRef: actionRef,
	}
}
