package aggregating

import (
	"sort"
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

const (
	topSellingLimit      = 5
	topSellingWindowDays = 7

	// NoMovementWindowDays é a janela considerada ao marcar produtos sem
	// movimentação. Quem busca os dados precisa cobrir a janela inteira.
	NoMovementWindowDays = 30
)

// ComputeProductMetrics calcula os indicadores de catálogo, estoque e
// promoções. Os itens de venda chegam com o resumo da venda embutido, o que
// permite excluir vendas canceladas sem nova consulta.
func ComputeProductMetrics(
	products []domain.ProductRecord,
	items []domain.SaleItemRecord,
	promotions []domain.PromotionRecord,
	now time.Time,
) domain.ProductMetrics {
	metrics := domain.ProductMetrics{
		TopSellingLast7Days: make([]domain.RankedProduct, 0, topSellingLimit),
	}

	categories := make(map[string]struct{})

	for _, product := range products {
		metrics.TotalProducts++

		if product.CategoryID != nil {
			categories[*product.CategoryID] = struct{}{}
		}

		if !product.Active {
			continue
		}

		metrics.ActiveProducts++
		metrics.TotalStockValue += product.Price * float64(product.Stock)

		if product.LowStock() {
			metrics.LowStockProducts++
		}
		if product.OutOfStock() {
			metrics.OutOfStockProducts++
		}
	}

	metrics.TotalCategories = len(categories)
	metrics.TotalStockValue = utils.RoundWithTwoDecimalPlace(metrics.TotalStockValue)

	// Quantidade vendida por produto (vendas não canceladas), usada tanto
	// pela economia de promoções quanto pelos mais vendidos
	soldByProductID := make(map[string]int)
	topSellingStart := timewindow.StartOfDay(now).AddDate(0, 0, -(topSellingWindowDays - 1))
	movementStart := timewindow.StartOfDay(now).AddDate(0, 0, -(NoMovementWindowDays - 1))

	quantityByName := make(map[string]int)
	movedProductIDs := make(map[string]struct{})

	for _, item := range items {
		if item.FromCancelledSale() {
			continue
		}

		soldByProductID[item.ProductID] += item.Quantity

		if !item.Sale.Date.Before(movementStart) {
			movedProductIDs[item.ProductID] = struct{}{}
		}

		if !item.Sale.Date.Before(topSellingStart) {
			quantityByName[item.ProductName] += item.Quantity
		}
	}

	for _, promotion := range promotions {
		if !promotion.Active {
			continue
		}

		metrics.ActivePromotions++

		saving := promotion.OriginalPrice - promotion.PromotionalPrice
		if saving > 0 {
			metrics.TotalSavingsFromPromotions += saving * float64(soldByProductID[promotion.ProductID])
		}
	}

	metrics.TotalSavingsFromPromotions = utils.RoundWithTwoDecimalPlace(metrics.TotalSavingsFromPromotions)

	metrics.TopSellingLast7Days = rankProducts(quantityByName, topSellingLimit)

	for _, product := range products {
		if !product.Active {
			continue
		}
		if _, moved := movedProductIDs[product.ID]; !moved {
			metrics.NoMovement30Days++
		}
	}

	return metrics
}

// rankProducts ordena por quantidade decrescente com desempate lexical
// pelo nome, e corta no limite
func rankProducts(quantityByName map[string]int, limit int) []domain.RankedProduct {
	ranked := make([]domain.RankedProduct, 0, len(quantityByName))
	for name, quantity := range quantityByName {
		ranked = append(ranked, domain.RankedProduct{ProductName: name, Quantity: quantity})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
