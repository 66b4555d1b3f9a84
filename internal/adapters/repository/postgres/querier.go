package postgres

import (
	"context"
	"database/sql"
)

// SQLQuerier is satisfied by both *sql.DB and *sql.Tx so repositories work
// inside and outside a transaction
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
