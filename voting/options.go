// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "fmt"

// Ballot scopes
const (
	// ScopeAny accepts ballots while any election row exists
	ScopeAny = "any"
	// ScopeLatest also requires the candidate number to belong to the most
	// recently upserted election
	ScopeLatest = "latest"
)

// Options tunes the checks made by BallotLedger.CastVote
type Options struct {
	// Serializable runs the vote checks and insert in a serializable
	// transaction on top of the unique constraint on votos.cpf.
	Serializable bool
	// Scope is ScopeAny or ScopeLatest. Empty means ScopeAny.
	Scope string
	// RequireRegisteredVoter rejects ballots from identities missing from eleitores.
	RequireRegisteredVoter bool
}

// Validate checks option values
func (o Options) Validate() error {
	switch o.Scope {
	case "", ScopeAny, ScopeLatest:
		return nil
	default:
		return fmt.Errorf("unknown ballot scope %q (want %q or %q)", o.Scope, ScopeAny, ScopeLatest)
	}
}
