package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const productsTable = "products p"

type productRepository struct {
	conn postgres.Conn
}

func NewProductRepository(conn postgres.Conn) ProductReader {
	return &productRepository{conn: conn}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	query, args, err := squirrel.
		Select("p.id", "p.code", "p.name", "p.price", "p.stock", "p.active", "p.category_id", "p.created_at").
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produtos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos")
	}
	defer rows.Close()

	products := make([]domain.ProductRecord, 0)
	for rows.Next() {
		var (
			product    domain.ProductRecord
			categoryID sql.NullString
		)

		err := rows.Scan(
			&product.ID, &product.Code, &product.Name, &product.Price,
			&product.Stock, &product.Active, &categoryID, &product.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}

		if categoryID.Valid {
			product.CategoryID = &categoryID.String
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de produtos")
	}

	return products, nil
}
