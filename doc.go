// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the urna API server.

urna manages a single election: administrators, the election definition,
eligible voters and one ballot per cpf.

# Starting the Server

	DATABASE_URL=file:urna.db go run .

Or against PostgreSQL with flags:

	go run . -t postgres -d "postgres://..." -p 8080

# Configuration

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): server port (default: 3000)
  - SERIALIZABLE_VOTES (-serializable): cast votes in a serializable transaction
  - BALLOT_SCOPE (-scope): any (default) or latest
  - REQUIRE_REGISTERED_VOTER (-require-voter): only registered voters may vote

Values are also read from a .env file (-env-file) without overriding the
real environment.

# Architecture

  - voting: registries and ballot ledger
  - identity: cpf validation
  - db: connection, schema, transactions and constraint errors
  - handlers, router, middleware: HTTP surface
  - metrics: Prometheus collectors
  - cliparse: configuration parsing
*/
package main
