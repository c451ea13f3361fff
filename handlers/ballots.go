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

// Client-facing messages, kept as the existing frontends expect them
const (
	msgInvalidJSON      = "JSON inválido"
	msgInvalidCPF       = "CPF inválido. Deve estar no formato xxx.xxx.xxx-xx."
	msgVoteMissing      = "Número e CPF são obrigatórios"
	msgNoElection       = "Nenhuma eleição cadastrada no momento."
	msgAlreadyVoted     = "Eleitor já votou."
	msgNotRegistered    = "Eleitor não cadastrado."
	msgUnknownCandidate = "Número de candidato inválido para a eleição atual."
	msgVoteFailed       = "Erro ao registrar voto"
	msgBallotsFailed    = "Erro ao buscar votos"
	msgInvalidNumber    = "Número inválido"
	msgCountFailed      = "Erro ao executar a consulta"
	msgHasVotedFailed   = "Erro ao verificar voto."
)

type BallotHandler struct {
	ledger  *voting.BallotLedger
	metrics *metrics.Metrics
}

func NewBallotHandler(ledger *voting.BallotLedger, m *metrics.Metrics) *BallotHandler {
	return &BallotHandler{ledger: ledger, metrics: m}
}

// CastVote handles POST /votos
func (h *BallotHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := decodeBody(r, &req); err != nil {
		h.metrics.IncrementVotesRejected("invalid_json")
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ballot, err := h.ledger.CastVote(r.Context(), req.Number.Int(), req.CPF)
	if err != nil {
		status, reason, message := classifyVoteError(err)
		h.metrics.IncrementVotesRejected(reason)
		if status == http.StatusInternalServerError {
			slog.Error("failed to cast vote",
				"error", err,
				"request_id", middleware.GetRequestID(r.Context()),
			)
		}
		middleware.ErrorResponse(w, status, message)
		return
	}

	h.metrics.IncrementVotesCast()
	slog.Info("vote cast", "ballot_id", ballot.ID, "number", ballot.Number)

	middleware.JSONResponse(w, http.StatusCreated, ballot)
}

func classifyVoteError(err error) (status int, reason, message string) {
	switch {
	case errors.Is(err, voting.ErrMissingField):
		return http.StatusBadRequest, "missing_field", msgVoteMissing
	case errors.Is(err, voting.ErrInvalidFormat):
		return http.StatusBadRequest, "invalid_format", msgInvalidCPF
	case errors.Is(err, voting.ErrInvalidNumber):
		return http.StatusBadRequest, "invalid_number", msgInvalidNumber
	case errors.Is(err, voting.ErrNoActiveElection):
		return http.StatusBadRequest, "no_election", msgNoElection
	case errors.Is(err, voting.ErrAlreadyVoted):
		return http.StatusBadRequest, "already_voted", msgAlreadyVoted
	case errors.Is(err, voting.ErrNotRegistered):
		return http.StatusBadRequest, "not_registered", msgNotRegistered
	case errors.Is(err, voting.ErrUnknownCandidate):
		return http.StatusBadRequest, "unknown_candidate", msgUnknownCandidate
	default:
		return http.StatusInternalServerError, "storage", msgVoteFailed
	}
}

// ListBallots handles GET /votos
func (h *BallotHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	ballots, err := h.ledger.List(r.Context())
	if err != nil {
		slog.Error("failed to list ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgBallotsFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballots)
}

// CountByCandidate handles GET /votos/count/{number}
func (h *BallotHandler) CountByCandidate(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidNumber)
		return
	}

	count, err := h.ledger.CountByCandidate(r.Context(), number)
	if err != nil {
		slog.Error("failed to count ballots", "error", err, "number", number)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgCountFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{Count: count})
}

// HasVoted handles GET /votos/cpf/{cpf}
// The cpf is matched as given, without format validation
func (h *BallotHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	voted, err := h.ledger.HasVoted(r.Context(), r.PathValue("cpf"))
	if err != nil {
		slog.Error("failed to check ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgHasVotedFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{Votou: voted})
}
