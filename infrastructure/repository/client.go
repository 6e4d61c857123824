package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
)

const clientsTable = "clients c"

type clientRepository struct {
	conn postgres.Conn
}

func NewClientRepository(conn postgres.Conn) ClientReader {
	return &clientRepository{conn: conn}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]domain.ClientRecord, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "c.active", "c.created_at").
		From(clientsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de clientes")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar clientes")
	}
	defer rows.Close()

	clients := make([]domain.ClientRecord, 0)
	for rows.Next() {
		var client domain.ClientRecord

		if err := rows.Scan(&client.ID, &client.Name, &client.Active, &client.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cliente")
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de clientes")
	}

	return clients, nil
}
