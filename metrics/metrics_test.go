// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncrementVotesCast()
	m.IncrementVotesCast()
	m.IncrementVotesRejected("already_voted")
	m.IncrementVotersRegistered()
	m.IncrementElectionsUpserted(true)
	m.IncrementElectionsUpserted(false)
	m.IncrementElectionsUpserted(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.VotesCast))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VotesRejected.WithLabelValues("already_voted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VotersRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ElectionsUpserted.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ElectionsUpserted.WithLabelValues("updated")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("POST", "POST /votos", http.StatusCreated, time.Now().Add(-10*time.Millisecond))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "POST /votos", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.IncrementVotesCast()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.VotesCast))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.VotesCast))
}

func TestHandler(t *testing.T) {
	m := New()
	m.IncrementVotersRegistered()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "urna_voters_registered_total 1"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
