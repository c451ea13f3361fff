// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/urna/middleware"
	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/voting"
)

type AdminHandler struct {
	admins *voting.AdminRegistry
}

func NewAdminHandler(admins *voting.AdminRegistry) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// RegisterAdmin handles POST /administrador
func (h *AdminHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	admin, err := h.admins.Register(r.Context(), req)
	if errors.Is(err, voting.ErrMissingField) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Todos os campos são obrigatórios")
		return
	}
	if err != nil {
		slog.Error("failed to register administrator", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao cadastrar administrador.")
		return
	}

	slog.Info("administrator registered", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Mensagem: "Administrador cadastrado com sucesso!",
	})
}

// ListAdmins handles GET /administrador
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.List(r.Context())
	if err != nil {
		slog.Error("failed to list administrators", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao buscar administrador")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, admins)
}

// LookupAdmin handles GET /administrador/cpf/{cpf}
func (h *AdminHandler) LookupAdmin(w http.ResponseWriter, r *http.Request) {
	found, err := h.admins.ExistsByIdentity(r.Context(), r.PathValue("cpf"))
	if err != nil {
		slog.Error("failed to look up administrator", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao verificar CPF do administrador")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminLookupResponse{Encontrado: found})
}
