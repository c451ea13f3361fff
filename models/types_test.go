package models

import (
	"encoding/json"
	"testing"
)

func TestCandidateNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *int
		wantErr bool
	}{
		{"integer", `{"number":12}`, intPtr(12), false},
		{"digit string", `{"number":"12"}`, intPtr(12), false},
		{"zero", `{"number":0}`, intPtr(0), false},
		{"zero string", `{"number":"0"}`, intPtr(0), false},
		{"absent", `{}`, nil, false},
		{"null", `{"number":null}`, nil, false},
		{"word", `{"number":"doze"}`, nil, true},
		{"empty string", `{"number":""}`, nil, true},
		{"fraction", `{"number":1.5}`, nil, true},
		{"bool", `{"number":true}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CastVoteRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %s", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			got := req.Number.Int()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Expected absent number, got %d", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Expected %d, got absent", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Expected %d, got %d", *tt.want, *got)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
