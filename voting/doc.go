// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting holds the voting-integrity rules: election gating, voter
uniqueness and one ballot per identity.

# Registries

Every registry receives the same *db.Gateway:

	elections := voting.NewElectionRegistry(gw)
	voters := voting.NewVoterRegistry(gw)
	ledger := voting.NewBallotLedger(gw, elections, voters, voting.Options{})

# Casting a Vote

CastVote runs its checks in a fixed order and stops at the first failure:

	ErrMissingField     number or cpf absent (0 is a valid number)
	ErrInvalidFormat    cpf is not NNN.NNN.NNN-NN
	ErrNoActiveElection no election row exists
	ErrAlreadyVoted     a ballot exists for cpf

The check for a prior ballot is a courtesy. The UNIQUE(cpf) constraint on
votos is what guarantees one ballot per identity when requests race, and
its violation is translated to ErrAlreadyVoted.

# Options

  - Serializable: run the checks and the insert in one serializable transaction
  - Scope: "any" accepts ballots while any election exists; "latest" also
    requires the number to belong to the most recently upserted election
  - RequireRegisteredVoter: reject identities missing from the voter registry

# Errors

Validation and business-rule errors are sentinels compared with errors.Is.
Every other gateway failure wraps ErrStorage and should be reported to
clients without detail.
*/
package voting
