// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/urna/cliparse"
	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/voting"
)

// TestDBURLEnv names the variable that switches tests to PostgreSQL.
// The database it points to is wiped by every test.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema.
// SQLite in a temporary directory unless TEST_DATABASE_URL is set.
func SetupTestDB(t *testing.T) *db.Gateway {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if url := os.Getenv(TestDBURLEnv); url != "" {
		conn, err := sql.Open(db.Postgres, url)
		require.NoError(t, err, "failed to open test database")
		_, err = conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+strings.Join(db.Tables, ", ")+" CASCADE")
		conn.Close()
		require.NoError(t, err, "failed to clean database")

		gw, err := db.Open(ctx, db.Postgres, url)
		require.NoError(t, err, "failed to create schema")
		t.Cleanup(func() { gw.Close() })
		return gw
	}

	path := filepath.Join(t.TempDir(), "urna.db")
	gw, err := db.Open(ctx, db.SQLite, "file:"+path)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { gw.Close() })
	return gw
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.SQLite,
		BallotScope:  voting.ScopeAny,
	}
}

// CreateTestElection inserts an election for ano with candidates 10 and 20 and blank 0
func CreateTestElection(t *testing.T, gw *db.Gateway, ano int) {
	t.Helper()

	_, err := gw.DB.Exec(`
		INSERT INTO dados_eleicao (cargo, ano, nomecand1, nomecand2, numcand1, numcand2, numbranco, revisao)
		VALUES ('Presidente', $1, 'Ana', 'Bruno', 10, 20, 0, $2)
	`, ano, time.Now().UnixNano())
	require.NoError(t, err, "failed to create test election")
}

// CreateTestVoter registers a voter directly in the database
func CreateTestVoter(t *testing.T, gw *db.Gateway, nome, cpf string) int64 {
	t.Helper()

	var id int64
	err := gw.DB.QueryRow(`
		INSERT INTO eleitores (nome, cpf, email) VALUES ($1, $2, NULL) RETURNING id
	`, nome, cpf).Scan(&id)
	require.NoError(t, err, "failed to create test voter")
	return id
}

// CreateTestBallot records a ballot directly, bypassing every check
func CreateTestBallot(t *testing.T, gw *db.Gateway, number int, cpf string) {
	t.Helper()

	_, err := gw.DB.Exec(`INSERT INTO votos (number, cpf) VALUES ($1, $2)`, number, cpf)
	require.NoError(t, err, "failed to create test ballot")
}

// CountRows returns the number of rows in table matching the optional where clause
func CountRows(t *testing.T, gw *db.Gateway, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, gw.DB.QueryRow(query, args...).Scan(&n), "failed to count %s", table)
	return n
}

// CPF builds a well-formed cpf from n, unique for n below 10^11
func CPF(n int) string {
	s := fmt.Sprintf("%011d", n)
	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code, "unexpected status code. Body: %s", w.Body.String())
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "failed to decode JSON response")
}

// AssertError checks the status code and the error message of a JSON error response
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)
	var resp struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &resp)
	assert.Equal(t, message, resp.Error)
}
