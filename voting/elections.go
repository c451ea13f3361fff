// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/models"
)

const electionColumns = `id, cargo, ano, nomecand1, nomecand2, numcand1, numcand2, numbranco`

// ElectionRegistry stores election definitions keyed by year.
type ElectionRegistry struct {
	gw  *db.Gateway
	now func() time.Time
}

func NewElectionRegistry(gw *db.Gateway) *ElectionRegistry {
	return &ElectionRegistry{gw: gw, now: time.Now}
}

// Upsert creates the election for req.Ano or overwrites the existing one.
// created is true when a new row was inserted.
//
// A new year needs every field. For an existing year, absent fields keep
// their stored values. Insert and update are each a single statement, so two
// concurrent first submissions for a year end with one row holding the last
// writer's values.
func (r *ElectionRegistry) Upsert(ctx context.Context, req models.ElectionRequest) (election models.Election, created bool, err error) {
	if req.Ano == nil {
		return models.Election{}, false, missingFields("ano")
	}

	for _, n := range []*int{req.Ano, req.NumCand1, req.NumCand2, req.NumBranco} {
		if n != nil && !storable(*n) {
			return models.Election{}, false, ErrInvalidNumber
		}
	}

	revision := r.now().UnixNano()
	missing := missingElectionFields(req)

	if len(missing) == 0 {
		row := r.gw.Querier(ctx).QueryRowContext(ctx, `
			INSERT INTO dados_eleicao (cargo, ano, nomecand1, nomecand2, numcand1, numcand2, numbranco, revisao)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (ano) DO NOTHING
			RETURNING `+electionColumns,
			*req.Cargo, *req.Ano, *req.NomeCand1, *req.NomeCand2, *req.NumCand1, *req.NumCand2, *req.NumBranco, revision,
		)
		election, err = scanElection(row)
		if err == nil {
			return election, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Election{}, false, storageErr("insert election", err)
		}
	}

	row := r.gw.Querier(ctx).QueryRowContext(ctx, `
		UPDATE dados_eleicao SET
			cargo = COALESCE($1, cargo),
			nomecand1 = COALESCE($2, nomecand1),
			nomecand2 = COALESCE($3, nomecand2),
			numcand1 = COALESCE($4, numcand1),
			numcand2 = COALESCE($5, numcand2),
			numbranco = COALESCE($6, numbranco),
			revisao = $7
		WHERE ano = $8
		RETURNING `+electionColumns,
		req.Cargo, req.NomeCand1, req.NomeCand2, req.NumCand1, req.NumCand2, req.NumBranco, revision, *req.Ano,
	)
	election, err = scanElection(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Partial submission for a year that does not exist yet
		return models.Election{}, false, missingFields(missing...)
	}
	if err != nil {
		return models.Election{}, false, storageErr("update election", err)
	}
	return election, false, nil
}

// List returns every election in insertion order
func (r *ElectionRegistry) List(ctx context.Context) ([]models.Election, error) {
	rows, err := r.gw.Querier(ctx).QueryContext(ctx, `SELECT `+electionColumns+` FROM dados_eleicao ORDER BY id`)
	if err != nil {
		return nil, storageErr("list elections", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	for rows.Next() {
		e, err := scanElection(rows)
		if err != nil {
			return nil, storageErr("scan election", err)
		}
		elections = append(elections, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list elections", err)
	}
	return elections, nil
}

// Exists reports whether at least one election is registered.
// Not scoped by year.
func (r *ElectionRegistry) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.gw.Querier(ctx).QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM dados_eleicao)`).Scan(&exists)
	if err != nil {
		return false, storageErr("check election", err)
	}
	return exists, nil
}

// Latest returns the most recently upserted election
func (r *ElectionRegistry) Latest(ctx context.Context) (models.Election, error) {
	row := r.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT `+electionColumns+`
		FROM dados_eleicao
		ORDER BY revisao DESC, id DESC
		LIMIT 1
	`)
	e, err := scanElection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Election{}, ErrNotFound
	}
	if err != nil {
		return models.Election{}, storageErr("latest election", err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanElection(s scanner) (models.Election, error) {
	var e models.Election
	err := s.Scan(&e.ID, &e.Cargo, &e.Ano, &e.NomeCand1, &e.NomeCand2, &e.NumCand1, &e.NumCand2, &e.NumBranco)
	return e, err
}

func missingElectionFields(req models.ElectionRequest) []string {
	var missing []string
	if req.Cargo == nil {
		missing = append(missing, "cargo")
	}
	if req.NomeCand1 == nil {
		missing = append(missing, "nomecand1")
	}
	if req.NomeCand2 == nil {
		missing = append(missing, "nomecand2")
	}
	if req.NumCand1 == nil {
		missing = append(missing, "numcand1")
	}
	if req.NumCand2 == nil {
		missing = append(missing, "numcand2")
	}
	if req.NumBranco == nil {
		missing = append(missing, "numbranco")
	}
	return missing
}
