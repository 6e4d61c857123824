// Package repository implementa a fachada de leitura sobre as coleções de
// registros do back-office. Todas as consultas são somente leitura, com
// predicados de igualdade/intervalo; o item de venda embute o resumo da
// venda relacionada (data e situação de pagamento) via join raso.
package repository

import (
	"context"
	"time"

	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

// SaleReader lê registros de venda
type SaleReader interface {
	// ListSalesSince retorna as vendas com data a partir de since, mais antigas primeiro
	ListSalesSince(ctx context.Context, since time.Time) ([]domain.SaleRecord, error)
}

// SaleItemReader lê itens de venda com o resumo da venda embutido
type SaleItemReader interface {
	// ListItemsSince retorna os itens cuja venda tem data a partir de since
	ListItemsSince(ctx context.Context, since time.Time) ([]domain.SaleItemRecord, error)
}

// ProductReader lê o catálogo de produtos
type ProductReader interface {
	ListProducts(ctx context.Context) ([]domain.ProductRecord, error)
}

// ClientReader lê a base de clientes
type ClientReader interface {
	ListClients(ctx context.Context) ([]domain.ClientRecord, error)
}

// PromotionReader lê as promoções ativas
type PromotionReader interface {
	ListActivePromotions(ctx context.Context) ([]domain.PromotionRecord, error)
}

// CategoryReader lê as categorias de produto
type CategoryReader interface {
	ListCategories(ctx context.Context) ([]domain.CategoryRecord, error)
}
