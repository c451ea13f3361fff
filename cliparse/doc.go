// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - EnvFile: dotenv file loaded before reading the environment (default: .env)
  - SerializableVotes: cast votes inside a serializable transaction
  - BallotScope: any (default) or latest
  - RequireRegisteredVoter: refuse ballots from unregistered identities

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-env-file       Dotenv file
	-serializable   Serializable vote transactions
	-scope          Ballot scope
	-require-voter  Registered voters only

# Environment Variables

Flags fall back to environment variables:

	PORT                     → -p
	DATABASE_URL             → -d
	DATABASE_TYPE            → -t
	SERIALIZABLE_VOTES       → -serializable
	BALLOT_SCOPE             → -scope
	REQUIRE_REGISTERED_VOTER → -require-voter

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
default .env is ignored; a missing file named with -env-file is an error.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	gw, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(gw, cfg, metrics.New())
*/
package cliparse
