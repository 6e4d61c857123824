package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const categoriesTable = "categories ca"

type categoryRepository struct {
	conn postgres.Conn
}

func NewCategoryRepository(conn postgres.Conn) CategoryReader {
	return &categoryRepository{conn: conn}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	query, args, err := squirrel.
		Select("ca.id", "ca.name").
		From(categoriesTable).
		OrderBy("ca.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de categorias")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar categorias")
	}
	defer rows.Close()

	categories := make([]domain.CategoryRecord, 0)
	for rows.Next() {
		var category domain.CategoryRecord

		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear categoria")
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de categorias")
	}

	return categories, nil
}
