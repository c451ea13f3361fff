// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/urna/cliparse"
	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/handlers"
	"github.com/danielhkuo/urna/metrics"
	"github.com/danielhkuo/urna/middleware"
	"github.com/danielhkuo/urna/voting"
)

func NewRouter(gw *db.Gateway, cfg cliparse.Config, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	// Registries share the gateway
	admins := voting.NewAdminRegistry(gw)
	elections := voting.NewElectionRegistry(gw)
	voters := voting.NewVoterRegistry(gw)
	ledger := voting.NewBallotLedger(gw, elections, voters, cfg.VotingOptions())

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(admins)
	electionHandler := handlers.NewElectionHandler(elections, m)
	voterHandler := handlers.NewVoterHandler(voters, m)
	ballotHandler := handlers.NewBallotHandler(ledger, m)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Administrators
	handle("POST /administrador", adminHandler.RegisterAdmin)
	handle("GET /administrador", adminHandler.ListAdmins)
	handle("GET /administrador/cpf/{cpf}", adminHandler.LookupAdmin)

	// Election definition
	handle("POST /eleicao", electionHandler.UpsertElection)
	handle("GET /eleicao", electionHandler.ListElections)

	// Ballots
	handle("POST /votos", ballotHandler.CastVote)
	handle("GET /votos", ballotHandler.ListBallots)
	handle("GET /votos/count/{number}", ballotHandler.CountByCandidate)
	handle("GET /votos/cpf/{cpf}", ballotHandler.HasVoted)

	// Voters
	handle("POST /eleitores", voterHandler.RegisterVoter)
	handle("GET /eleitores", voterHandler.ListVoters)
	handle("GET /eleitores/{id}", voterHandler.GetVoter)
	handle("GET /eleitores/cpf/{cpf}", voterHandler.GetVoterByCPF)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("urna API v1"))
	})

	return middleware.CORS(mux)
}
