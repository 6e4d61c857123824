package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/viniciusgf/loja-manager-api/internal/config"
)

// Conn é a visão somente leitura da conexão usada pelos repositórios.
// O motor de métricas nunca escreve no banco.
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
