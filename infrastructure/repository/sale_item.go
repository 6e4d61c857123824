package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const saleItemsTable = "sale_items si"

type saleItemRepository struct {
	conn postgres.Conn
}

func NewSaleItemRepository(conn postgres.Conn) SaleItemReader {
	return &saleItemRepository{conn: conn}
}

// ListItemsSince busca os itens junto com o resumo da venda (embedding raso
// item → venda), para que os agregadores excluam vendas canceladas sem uma
// segunda consulta.
func (r *saleItemRepository) ListItemsSince(ctx context.Context, since time.Time) ([]domain.SaleItemRecord, error) {
	query, args, err := squirrel.
		Select(
			"si.sale_id", "si.product_id", "si.product_name",
			"si.quantity", "si.unit_price", "si.subtotal",
			"s.date", "s.payment_status",
		).
		From(saleItemsTable).
		Join("sales s ON s.id = si.sale_id").
		Where(squirrel.GtOrEq{"s.date": since}).
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de itens de venda")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de venda")
	}
	defer rows.Close()

	items := make([]domain.SaleItemRecord, 0)
	for rows.Next() {
		var (
			item    domain.SaleItemRecord
			summary domain.SaleSummary
		)

		err := rows.Scan(
			&item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal,
			&summary.Date, &summary.PaymentStatus,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item de venda")
		}

		item.Sale = &summary
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de itens de venda")
	}

	return items, nil
}
