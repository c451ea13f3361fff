// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the persistence gateway: connection setup, schema creation,
transactions carried in a context and classification of driver errors.

# Opening

Open picks the driver from the database type, pings and creates the schema:

	gw, err := db.Open(ctx, db.Postgres, "postgres://...")
	gw, err := db.Open(ctx, db.SQLite, "file:urna.db")

Safe to call on an existing database - every statement uses IF NOT EXISTS.

# Tables

  - administrador: registered administrators
  - dados_eleicao: election definitions, UNIQUE(ano)
  - eleitores: eligible voters, UNIQUE(cpf)
  - votos: ballots, UNIQUE(cpf), indexed by number

The UNIQUE constraints are what keeps one ballot per cpf, one voter per cpf
and one election per year under concurrent requests. Stores detect the
violation with IsUniqueViolation and translate it into a domain error.

# Transactions

InTx begins a transaction and stores it in the context handed to the
callback. Querier(ctx) returns that transaction when present, so registry
methods compose inside one transaction without extra parameters:

	err := gw.InTx(ctx, true, func(ctx context.Context) error {
		row := gw.Querier(ctx).QueryRowContext(ctx, "SELECT ...")
		// ...
	})
*/
package db
