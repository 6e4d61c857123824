package domain

import "time"

const (
	// LowStockThreshold define o limite de "estoque baixo" (0 < estoque ≤ 5)
	LowStockThreshold = 5

	// NewProductWindowDays é a janela em dias para considerar um produto "novo"
	NewProductWindowDays = 21
)

// ProductRecord é o registro bruto de um produto do catálogo
type ProductRecord struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	Active     bool      `json:"active"`
	CategoryID *string   `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OutOfStock indica se o produto está sem estoque
func (p ProductRecord) OutOfStock() bool {
	return p.Stock == 0
}

// LowStock indica se o produto está com estoque baixo (sem incluir estoque zerado)
func (p ProductRecord) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// PromotionRecord é o registro bruto de uma promoção de produto
type PromotionRecord struct {
	ProductID        string  `json:"product_id"`
	OriginalPrice    float64 `json:"original_price"`
	PromotionalPrice float64 `json:"promotional_price"`
	Active           bool    `json:"active"`
}

// CategoryRecord é o registro bruto de uma categoria de produtos
type CategoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
