// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/metrics"
	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/testutil"
	"github.com/danielhkuo/urna/voting"
)

type testHandlers struct {
	gw        *db.Gateway
	metrics   *metrics.Metrics
	admins    *AdminHandler
	elections *ElectionHandler
	voters    *VoterHandler
	ballots   *BallotHandler
}

func setupHandlers(t *testing.T, opts voting.Options) *testHandlers {
	t.Helper()

	gw := testutil.SetupTestDB(t)
	m := metrics.New()
	elections := voting.NewElectionRegistry(gw)
	voters := voting.NewVoterRegistry(gw)

	return &testHandlers{
		gw:        gw,
		metrics:   m,
		admins:    NewAdminHandler(voting.NewAdminRegistry(gw)),
		elections: NewElectionHandler(elections, m),
		voters:    NewVoterHandler(voters, m),
		ballots:   NewBallotHandler(voting.NewBallotLedger(gw, elections, voters, opts), m),
	}
}

// serve runs h against req with optional path values given as name/value pairs
func serve(h http.HandlerFunc, req *http.Request, pathValues ...string) *httptest.ResponseRecorder {
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func ptr[T any](v T) *T { return &v }

func num(n int) *models.CandidateNumber {
	v := models.CandidateNumber(n)
	return &v
}
