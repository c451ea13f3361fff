// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/identity"
	"github.com/danielhkuo/urna/models"
)

// VoterRegistry stores eligible voters, unique by cpf.
type VoterRegistry struct {
	gw *db.Gateway
}

func NewVoterRegistry(gw *db.Gateway) *VoterRegistry {
	return &VoterRegistry{gw: gw}
}

// Register inserts a new voter. Email is optional.
func (r *VoterRegistry) Register(ctx context.Context, req models.VoterRequest) (models.Voter, error) {
	var missing []string
	if req.Nome == "" {
		missing = append(missing, "nome")
	}
	if req.CPF == "" {
		missing = append(missing, "cpf")
	}
	if len(missing) > 0 {
		return models.Voter{}, missingFields(missing...)
	}
	if !identity.Validate(req.CPF) {
		return models.Voter{}, ErrInvalidFormat
	}

	exists, err := r.Exists(ctx, req.CPF)
	if err != nil {
		return models.Voter{}, err
	}
	if exists {
		return models.Voter{}, ErrDuplicate
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	// The pre-check above only gives a friendly error; UNIQUE(cpf) decides races
	row := r.gw.Querier(ctx).QueryRowContext(ctx, `
		INSERT INTO eleitores (nome, cpf, email)
		VALUES ($1, $2, $3)
		RETURNING id, nome, cpf, email
	`, req.Nome, req.CPF, email)
	voter, err := scanVoter(row)
	if db.IsUniqueViolation(err) {
		return models.Voter{}, ErrDuplicate
	}
	if err != nil {
		return models.Voter{}, storageErr("insert voter", err)
	}
	return voter, nil
}

// GetByID returns ErrNotFound when no voter has the id
func (r *VoterRegistry) GetByID(ctx context.Context, id int64) (models.Voter, error) {
	row := r.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT id, nome, cpf, email FROM eleitores WHERE id = $1
	`, id)
	return r.one(row, "get voter")
}

// GetByIdentity validates cpf before looking it up
func (r *VoterRegistry) GetByIdentity(ctx context.Context, cpf string) (models.Voter, error) {
	if !identity.Validate(cpf) {
		return models.Voter{}, ErrInvalidFormat
	}
	row := r.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT id, nome, cpf, email FROM eleitores WHERE cpf = $1
	`, cpf)
	return r.one(row, "get voter by cpf")
}

// Exists reports whether a voter with cpf is registered. cpf is used as given.
func (r *VoterRegistry) Exists(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM eleitores WHERE cpf = $1)
	`, cpf).Scan(&exists)
	if err != nil {
		return false, storageErr("check voter", err)
	}
	return exists, nil
}

func (r *VoterRegistry) List(ctx context.Context) ([]models.Voter, error) {
	rows, err := r.gw.Querier(ctx).QueryContext(ctx, `SELECT id, nome, cpf, email FROM eleitores ORDER BY id`)
	if err != nil {
		return nil, storageErr("list voters", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, storageErr("scan voter", err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list voters", err)
	}
	return voters, nil
}

func (r *VoterRegistry) one(row *sql.Row, op string) (models.Voter, error) {
	v, err := scanVoter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, storageErr(op, err)
	}
	return v, nil
}

func scanVoter(s scanner) (models.Voter, error) {
	var v models.Voter
	var email sql.NullString
	if err := s.Scan(&v.ID, &v.Nome, &v.CPF, &email); err != nil {
		return models.Voter{}, err
	}
	if email.Valid {
		v.Email = &email.String
	}
	return v, nil
}
