// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types. They double as database/sql driver names.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Gateway is the handle every registry receives. It is the only shared
// mutable resource in the process.
type Gateway struct {
	DB      *sql.DB
	Dialect string
}

// New wraps an already opened connection pool.
func New(conn *sql.DB, dialect string) *Gateway {
	return &Gateway{DB: conn, Dialect: dialect}
}

// Open connects to the database, verifies the connection and creates the schema.
func Open(ctx context.Context, dialect, url string) (*Gateway, error) {
	switch dialect {
	case Postgres:
	case SQLite:
		url = withBusyTimeout(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	conn, err := sql.Open(dialect, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection avoids SQLITE_BUSY under load
	if dialect == SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := CreateSchema(ctx, conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return New(conn, dialect), nil
}

// Close releases the connection pool
func (g *Gateway) Close() error {
	return g.DB.Close()
}

// Querier returns the transaction stored in ctx, or the pool when there is none.
func (g *Gateway) Querier(ctx context.Context) Querier {
	if tx, ok := TxFrom(ctx); ok {
		return tx
	}
	return g.DB
}

func withBusyTimeout(url string) string {
	if strings.Contains(url, "busy_timeout") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=busy_timeout(5000)"
}
