package aggregating

import (
	"sort"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/pkg/utils"
)

const topCategoriesLimit = 6

// ComputeCategoryBreakdown agrega o faturamento por categoria a partir
// dos itens de venda, resolvendo a categoria de cada item pelo produto.
// Itens de produtos sem categoria caem no grupo "uncategorized".
func ComputeCategoryBreakdown(
	items []domain.SaleItemRecord,
	products []domain.ProductRecord,
	categories []domain.CategoryRecord,
) domain.CategorySalesBreakdown {
	categoryByProductID := make(map[string]string, len(products))
	for _, product := range products {
		if product.CategoryID != nil {
			categoryByProductID[product.ID] = *product.CategoryID
		}
	}

	nameByCategoryID := make(map[string]string, len(categories))
	for _, category := range categories {
		nameByCategoryID[category.ID] = category.Name
	}

	totalByCategoryID := make(map[string]float64)
	var grandTotal float64

	for _, item := range items {
		if item.FromCancelledSale() {
			continue
		}

		categoryID, hasCategory := categoryByProductID[item.ProductID]
		if !hasCategory {
			categoryID = domain.CategoryUncategorized
		}

		totalByCategoryID[categoryID] += item.Subtotal
		grandTotal += item.Subtotal
	}

	breakdown := make(domain.CategorySalesBreakdown, 0, len(totalByCategoryID))
	for categoryID, total := range totalByCategoryID {
		name := nameByCategoryID[categoryID]
		if categoryID == domain.CategoryUncategorized {
			name = "Sem categoria"
		}

		breakdown = append(breakdown, domain.CategorySales{
			CategoryID:   categoryID,
			CategoryName: name,
			Total:        utils.RoundWithTwoDecimalPlace(total),
			Percentage:   utils.SafePercentage(total, grandTotal),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}
		return breakdown[i].CategoryName < breakdown[j].CategoryName
	})

	if len(breakdown) > topCategoriesLimit {
		breakdown = breakdown[:topCategoriesLimit]
	}

	return breakdown
}
