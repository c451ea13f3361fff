// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, dialect string) error {
	_, err := conn.ExecContext(ctx, Schema(dialect))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema returns the DDL for the given dialect. Only the generated
// primary key column differs between PostgreSQL and SQLite.
func Schema(dialect string) string {
	pk := "SERIAL PRIMARY KEY"
	if dialect == SQLite {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return strings.ReplaceAll(schema, "{{pk}}", pk)
}

// Tables lists every table in drop order
var Tables = []string{"votos", "eleitores", "dados_eleicao", "administrador"}

const schema = `
-- Administrators (cpf is intentionally not unique)
CREATE TABLE IF NOT EXISTS administrador (
    id {{pk}},
    nome TEXT NOT NULL,
    cpf TEXT NOT NULL,
    email TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_administrador_cpf ON administrador(cpf);

-- Election definitions, upserted by year
CREATE TABLE IF NOT EXISTS dados_eleicao (
    id {{pk}},
    cargo TEXT NOT NULL,
    ano INTEGER NOT NULL UNIQUE,
    nomecand1 TEXT NOT NULL,
    nomecand2 TEXT NOT NULL,
    numcand1 INTEGER NOT NULL,
    numcand2 INTEGER NOT NULL,
    numbranco INTEGER NOT NULL,
    revisao BIGINT NOT NULL DEFAULT 0
);

-- Eligible voters
CREATE TABLE IF NOT EXISTS eleitores (
    id {{pk}},
    nome TEXT NOT NULL,
    cpf TEXT NOT NULL UNIQUE,
    email TEXT
);

-- Ballots: at most one per cpf
CREATE TABLE IF NOT EXISTS votos (
    id {{pk}},
    number INTEGER NOT NULL,
    cpf TEXT NOT NULL UNIQUE
);

CREATE INDEX IF NOT EXISTS idx_votos_number ON votos(number);
`
