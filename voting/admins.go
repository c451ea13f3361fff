// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/models"
)

// AdminRegistry stores administrators. cpf is neither validated nor unique.
type AdminRegistry struct {
	gw *db.Gateway
}

func NewAdminRegistry(gw *db.Gateway) *AdminRegistry {
	return &AdminRegistry{gw: gw}
}

// Register requires nome, cpf and email
func (r *AdminRegistry) Register(ctx context.Context, req models.AdminRequest) (models.Administrator, error) {
	var missing []string
	if req.Nome == "" {
		missing = append(missing, "nome")
	}
	if req.CPF == "" {
		missing = append(missing, "cpf")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return models.Administrator{}, missingFields(missing...)
	}

	admin := models.Administrator{Nome: req.Nome, CPF: req.CPF, Email: req.Email}
	err := r.gw.Querier(ctx).QueryRowContext(ctx, `
		INSERT INTO administrador (nome, cpf, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Nome, req.CPF, req.Email).Scan(&admin.ID)
	if err != nil {
		return models.Administrator{}, storageErr("insert administrator", err)
	}
	return admin, nil
}

func (r *AdminRegistry) List(ctx context.Context) ([]models.Administrator, error) {
	rows, err := r.gw.Querier(ctx).QueryContext(ctx, `SELECT id, nome, cpf, email FROM administrador ORDER BY id`)
	if err != nil {
		return nil, storageErr("list administrators", err)
	}
	defer rows.Close()

	admins := []models.Administrator{}
	for rows.Next() {
		var a models.Administrator
		if err := rows.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email); err != nil {
			return nil, storageErr("scan administrator", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list administrators", err)
	}
	return admins, nil
}

// ExistsByIdentity reports whether any administrator has cpf
func (r *AdminRegistry) ExistsByIdentity(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.gw.Querier(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM administrador WHERE cpf = $1)
	`, cpf).Scan(&exists)
	if err != nil {
		return false, storageErr("check administrator", err)
	}
	return exists, nil
}
