// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"math"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/identity"
	"github.com/danielhkuo/urna/models"
)

// BallotLedger records at most one ballot per cpf and tallies them.
type BallotLedger struct {
	gw        *db.Gateway
	elections *ElectionRegistry
	voters    *VoterRegistry
	opts      Options
}

func NewBallotLedger(gw *db.Gateway, elections *ElectionRegistry, voters *VoterRegistry, opts Options) *BallotLedger {
	if opts.Scope == "" {
		opts.Scope = ScopeAny
	}
	return &BallotLedger{gw: gw, elections: elections, voters: voters, opts: opts}
}

// CastVote records a ballot for cpf.
//
// Checks run in order: presence, cpf format, election gate, prior ballot.
// UNIQUE(cpf) on votos is what holds under concurrent submissions; a
// violation on insert is reported as ErrAlreadyVoted.
func (l *BallotLedger) CastVote(ctx context.Context, number *int, cpf *string) (models.Ballot, error) {
	var missing []string
	if number == nil {
		missing = append(missing, "number")
	}
	if cpf == nil || *cpf == "" {
		missing = append(missing, "cpf")
	}
	if len(missing) > 0 {
		return models.Ballot{}, missingFields(missing...)
	}
	if !identity.Validate(*cpf) {
		return models.Ballot{}, ErrInvalidFormat
	}
	if !storable(*number) {
		return models.Ballot{}, ErrInvalidNumber
	}

	if !l.opts.Serializable {
		return l.castVote(ctx, *number, *cpf)
	}

	var ballot models.Ballot
	err := l.gw.InTx(ctx, true, func(ctx context.Context) error {
		var err error
		ballot, err = l.castVote(ctx, *number, *cpf)
		return err
	})
	if err != nil {
		return models.Ballot{}, l.txFailure(ctx, *cpf, err)
	}
	return ballot, nil
}

// txFailure maps the error of a failed vote transaction to the one reported
// to the caller.
func (l *BallotLedger) txFailure(ctx context.Context, cpf string, err error) error {
	if db.IsSerializationFailure(err) {
		// The conflicting transaction may have been a ballot for the same cpf
		if voted, herr := l.HasVoted(ctx, cpf); herr == nil && voted {
			return ErrAlreadyVoted
		}
	}
	if IsRejection(err) || errors.Is(err, ErrStorage) {
		return err
	}
	return storageErr("cast vote", err)
}

func (l *BallotLedger) castVote(ctx context.Context, number int, cpf string) (models.Ballot, error) {
	if err := l.checkElection(ctx, number); err != nil {
		return models.Ballot{}, err
	}

	if l.opts.RequireRegisteredVoter {
		registered, err := l.voters.Exists(ctx, cpf)
		if err != nil {
			return models.Ballot{}, err
		}
		if !registered {
			return models.Ballot{}, ErrNotRegistered
		}
	}

	voted, err := l.HasVoted(ctx, cpf)
	if err != nil {
		return models.Ballot{}, err
	}
	if voted {
		return models.Ballot{}, ErrAlreadyVoted
	}

	ballot := models.Ballot{Number: number, CPF: cpf}
	err = l.gw.Querier(ctx).QueryRowContext(ctx, `
		INSERT INTO votos (number, cpf)
		VALUES ($1, $2)
		RETURNING id
	`, number, cpf).Scan(&ballot.ID)
	if db.IsUniqueViolation(err) {
		return models.Ballot{}, ErrAlreadyVoted
	}
	if err != nil {
		return models.Ballot{}, storageErr("insert ballot", err)
	}
	return ballot, nil
}

func (l *BallotLedger) checkElection(ctx context.Context, number int) error {
	if l.opts.Scope != ScopeLatest {
		exists, err := l.elections.Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNoActiveElection
		}
		return nil
	}

	latest, err := l.elections.Latest(ctx)
	if errors.Is(err, ErrNotFound) {
		return ErrNoActiveElection
	}
	if err != nil {
		return err
	}
	if !latest.Accepts(number) {
		return ErrUnknownCandidate
	}
	return nil
}

// List returns every ballot in insertion order
func (l *BallotLedger) List(ctx context.Context) ([]models.Ballot, error) {
	rows, err := l.gw.Querier(ctx).QueryContext(ctx, `SELECT id, number, cpf FROM votos ORDER BY id`)
	if err != nil {
		return nil, storageErr("list ballots", err)
	}
	defer rows.Close()

	ballots := []models.Ballot{}
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.ID, &b.Number, &b.CPF); err != nil {
			return nil, storageErr("scan ballot", err)
		}
		ballots = append(ballots, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list ballots", err)
	}
	return ballots, nil
}

// HasVoted reports whether a ballot exists for cpf. cpf is matched as stored,
// without format validation.
func (l *BallotLedger) HasVoted(ctx context.Context, cpf string) (bool, error) {
	var voted bool
	err := l.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM votos WHERE cpf = $1)
	`, cpf).Scan(&voted)
	if err != nil {
		return false, storageErr("check ballot", err)
	}
	return voted, nil
}

// CountByCandidate returns the number of ballots for number, 0 for unknown numbers
func (l *BallotLedger) CountByCandidate(ctx context.Context, number int) (int64, error) {
	if !storable(number) {
		return 0, nil
	}
	var count int64
	err := l.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT COUNT(*) FROM votos WHERE number = $1
	`, number).Scan(&count)
	if err != nil {
		return 0, storageErr("count ballots", err)
	}
	return count, nil
}

// storable reports whether n fits the INTEGER columns of both databases
func storable(n int) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}
