//go:build unit

package commands_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// noopDB stands in for the transaction handle; repositories are mocked.
type noopDB struct{}

func (noopDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (noopDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }

func (noopDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }
