package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const promotionsTable = "promotions pr"

type promotionRepository struct {
	conn postgres.Conn
}

func NewPromotionRepository(conn postgres.Conn) PromotionReader {
	return &promotionRepository{conn: conn}
}

func (r *promotionRepository) ListActivePromotions(ctx context.Context) ([]domain.PromotionRecord, error) {
	query, args, err := squirrel.
		Select("pr.product_id", "pr.original_price", "pr.promotional_price", "pr.active").
		From(promotionsTable).
		Where(squirrel.Eq{"pr.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de promoções")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar promoções")
	}
	defer rows.Close()

	promotions := make([]domain.PromotionRecord, 0)
	for rows.Next() {
		var promotion domain.PromotionRecord

		err := rows.Scan(
			&promotion.ProductID, &promotion.OriginalPrice,
			&promotion.PromotionalPrice, &promotion.Active,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear promoção")
		}

		promotions = append(promotions, promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de promoções")
	}

	return promotions, nil
}
