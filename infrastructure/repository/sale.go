package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const salesTable = "sales s"

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleReader {
	return &saleRepository{conn: conn}
}

func (r *saleRepository) ListSalesSince(ctx context.Context, since time.Time) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(
			"s.id", "s.date", "s.gross_total", "s.discount_total", "s.final_total",
			"s.payment_method", "s.payment_status", "s.client_id",
			"s.is_delivery", "s.delivery_status", "s.created_at",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"s.date": since}).
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}
	defer rows.Close()

	sales := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			sale           domain.SaleRecord
			clientID       sql.NullString
			deliveryStatus sql.NullString
		)

		err := rows.Scan(
			&sale.ID, &sale.Date, &sale.GrossTotal, &sale.DiscountTotal, &sale.FinalTotal,
			&sale.PaymentMethod, &sale.PaymentStatus, &clientID,
			&sale.IsDelivery, &deliveryStatus, &sale.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}

		if clientID.Valid {
			sale.ClientID = &clientID.String
		}
		if deliveryStatus.Valid {
			sale.DeliveryStatus = domain.DeliveryStatus(deliveryStatus.String)
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas")
	}

	return sales, nil
}
