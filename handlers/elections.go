// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/urna/metrics"
	"github.com/danielhkuo/urna/middleware"
	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/voting"
)

type ElectionHandler struct {
	elections *voting.ElectionRegistry
	metrics   *metrics.Metrics
}

func NewElectionHandler(elections *voting.ElectionRegistry, m *metrics.Metrics) *ElectionHandler {
	return &ElectionHandler{elections: elections, metrics: m}
}

// UpsertElection handles POST /eleicao
// Returns 201 when the year is new and 200 when an existing year was overwritten
func (h *ElectionHandler) UpsertElection(w http.ResponseWriter, r *http.Request) {
	var req models.ElectionRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	election, created, err := h.elections.Upsert(r.Context(), req)
	if err != nil {
		var missing *voting.MissingFieldError
		if errors.As(err, &missing) {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"Campos obrigatórios ausentes: "+strings.Join(missing.Fields, ", "))
			return
		}
		if errors.Is(err, voting.ErrInvalidNumber) {
			middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidNumber)
			return
		}
		slog.Error("failed to upsert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao cadastrar/atualizar eleição")
		return
	}

	h.metrics.IncrementElectionsUpserted(created)
	slog.Info("election saved", "ano", election.Ano, "created", created)

	if created {
		middleware.JSONResponse(w, http.StatusCreated, models.ElectionResponse{
			Message: "Eleição cadastrada com sucesso!",
			Data:    election,
		})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		Message: "Eleição atualizada com sucesso!",
		Data:    election,
	})
}

// ListElections handles GET /eleicao
// An empty registry is a 404
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.elections.List(r.Context())
	if err != nil {
		slog.Error("failed to list elections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erro ao buscar eleições")
		return
	}

	if len(elections) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Nenhuma eleição encontrada")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, elections)
}
