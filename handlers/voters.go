// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/urna/metrics"
	"github.com/danielhkuo/urna/middleware"
	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/voting"
)

const msgVoterNotFound = "Eleitor não encontrado"

type VoterHandler struct {
	voters  *voting.VoterRegistry
	metrics *metrics.Metrics
}

func NewVoterHandler(voters *voting.VoterRegistry, m *metrics.Metrics) *VoterHandler {
	return &VoterHandler{voters: voters, metrics: m}
}

// RegisterVoter handles POST /eleitores
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.VoterRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	voter, err := h.voters.Register(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, voting.ErrMissingField):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Nome e CPF são obrigatórios")
		return
	case errors.Is(err, voting.ErrInvalidFormat):
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidCPF)
		return
	case errors.Is(err, voting.ErrDuplicate):
		middleware.ErrorResponse(w, http.StatusBadRequest, "CPF já cadastrado!")
		return
	default:
		slog.Error("failed to register voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao cadastrar eleitor")
		return
	}

	h.metrics.IncrementVotersRegistered()
	slog.Info("voter registered", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusCreated, voter)
}

// ListVoters handles GET /eleitores
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.voters.List(r.Context())
	if err != nil {
		slog.Error("failed to list voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao buscar eleitores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// GetVoter handles GET /eleitores/{id}
// A non-numeric id cannot match any voter and is reported as not found
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, msgVoterNotFound)
		return
	}

	voter, err := h.voters.GetByID(r.Context(), id)
	h.writeVoter(w, voter, err)
}

// GetVoterByCPF handles GET /eleitores/cpf/{cpf}
func (h *VoterHandler) GetVoterByCPF(w http.ResponseWriter, r *http.Request) {
	voter, err := h.voters.GetByIdentity(r.Context(), r.PathValue("cpf"))
	h.writeVoter(w, voter, err)
}

func (h *VoterHandler) writeVoter(w http.ResponseWriter, voter models.Voter, err error) {
	switch {
	case err == nil:
		middleware.JSONResponse(w, http.StatusOK, voter)
	case errors.Is(err, voting.ErrInvalidFormat):
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidCPF)
	case errors.Is(err, voting.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, msgVoterNotFound)
	default:
		slog.Error("failed to get voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao buscar eleitor")
	}
}
