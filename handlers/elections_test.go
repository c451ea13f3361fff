// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/testutil"
	"github.com/danielhkuo/urna/voting"
)

func fullElection(ano int) map[string]interface{} {
	return map[string]interface{}{
		"cargo":     "Prefeito",
		"ano":       ano,
		"nomecand1": "Ana",
		"nomecand2": "Bruno",
		"numcand1":  10,
		"numcand2":  20,
		"numbranco": 0,
	}
}

func TestUpsertElection(t *testing.T) {
	h := setupHandlers(t, voting.Options{})

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, resp *models.ElectionResponse)
	}{
		{
			name:           "new year",
			body:           fullElection(2024),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.ElectionResponse) {
				if resp.Data.Ano != 2024 || resp.Data.NumBranco != 0 {
					t.Errorf("Unexpected election: %+v", resp.Data)
				}
			},
		},
		{
			name:           "same year overwrites",
			body:           map[string]interface{}{"ano": 2024, "nomecand1": "X"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ElectionResponse) {
				if resp.Data.NomeCand1 != "X" {
					t.Errorf("Expected nomecand1 X, got %s", resp.Data.NomeCand1)
				}
				if resp.Data.NomeCand2 != "Bruno" {
					t.Errorf("Expected nomecand2 to be kept, got %s", resp.Data.NomeCand2)
				}
			},
		},
		{
			name:           "missing ano",
			body:           map[string]interface{}{"cargo": "Prefeito"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Campos obrigatórios ausentes: ano",
		},
		{
			name:           "candidate number beyond integer column",
			body:           map[string]interface{}{"ano": 2031, "cargo": "Prefeito", "nomecand1": "A", "nomecand2": "B", "numcand1": 3000000000, "numcand2": 2, "numbranco": 0},
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidNumber,
		},
		{
			name:           "partial new year",
			body:           map[string]interface{}{"ano": 2030, "cargo": "Prefeito", "nomecand1": "A", "nomecand2": "B", "numcand1": 1, "numcand2": 2},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Campos obrigatórios ausentes: numbranco",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h.elections.UpsertElection, testutil.MakeRequest("POST", "/eleicao", tt.body))

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.ElectionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message == "" {
				t.Error("Expected a message")
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, &resp)
			}
		})
	}

	if n := testutil.CountRows(t, h.gw, "dados_eleicao", ""); n != 1 {
		t.Errorf("Expected 1 election row, got %d", n)
	}
}

func TestListElections(t *testing.T) {
	h := setupHandlers(t, voting.Options{})

	w := serve(h.elections.ListElections, httptest.NewRequest("GET", "/eleicao", nil))
	testutil.AssertError(t, w, http.StatusNotFound, "Nenhuma eleição encontrada")

	testutil.CreateTestElection(t, h.gw, 2024)
	testutil.CreateTestElection(t, h.gw, 2026)

	w = serve(h.elections.ListElections, httptest.NewRequest("GET", "/eleicao", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var elections []models.Election
	testutil.AssertJSON(t, w, &elections)
	if len(elections) != 2 || elections[0].Ano != 2024 {
		t.Errorf("Unexpected elections: %+v", elections)
	}
}
