package aggregating

import (
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

// ComputeDeliveryMetrics calcula os indicadores de entrega sobre as vendas
// marcadas para entrega. A janela de SLA é de 2 dias a partir da criação.
func ComputeDeliveryMetrics(sales []domain.SaleRecord, now time.Time) domain.DeliveryMetrics {
	metrics := domain.DeliveryMetrics{}

	deliveredCount := 0

	for _, sale := range sales {
		if !sale.IsDelivery {
			continue
		}

		metrics.TotalDeliveries++

		status := sale.DeliveryStatus
		terminal := status == domain.DeliveryStatusDelivered || status == domain.DeliveryStatusCancelled

		switch status {
		case domain.DeliveryStatusUnread, domain.DeliveryStatusPreparing, domain.DeliveryStatusOutForDelivery:
			metrics.PendingDeliveries++
		}

		if status == domain.DeliveryStatusPreparing {
			metrics.InSeparation++
		}

		if timewindow.SameDay(sale.Date, now) && !terminal {
			metrics.ScheduledToday++
		}

		if !terminal && timewindow.DaysBetween(sale.CreatedAt, now) > domain.DeliverySLADays {
			metrics.DelayedDeliveries++
		}

		if status == domain.DeliveryStatusDelivered {
			deliveredCount++
			if timewindow.DaysBetween(sale.CreatedAt, sale.Date) <= domain.DeliverySLADays {
				metrics.CompletedOnTime++
			}
		}
	}

	metrics.OnTimePercentage = utils.SafePercentage(
		float64(metrics.CompletedOnTime),
		float64(deliveredCount),
	)

	return metrics
}
