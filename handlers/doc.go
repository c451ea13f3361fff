// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the urna API.

# Handler Types

Each handler wraps one registry from package voting:

  - AdminHandler: administrator registration and lookup
  - ElectionHandler: election definition upsert and listing
  - VoterHandler: voter registration and lookup
  - BallotHandler: vote casting, listing and tallies

Handlers translate registry errors into status codes and short Portuguese
messages in an {"error": "..."} body. Storage failures are logged and
answered with a generic 500.

# Voting Flow

	POST /eleicao              → UpsertElection (201 created, 200 updated)
	POST /votos                → CastVote (201 with the ballot)
	GET  /votos/count/{number} → CountByCandidate
	GET  /votos/cpf/{cpf}      → HasVoted

A ballot is refused with 400 when fields are missing, the cpf is not in
xxx.xxx.xxx-xx form, no election is registered, or the cpf already voted.
*/
package handlers
