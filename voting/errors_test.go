// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing field", missingFields("cpf"), true},
		{"wrapped already voted", fmt.Errorf("cast: %w", ErrAlreadyVoted), true},
		{"invalid format", ErrInvalidFormat, true},
		{"unknown candidate", ErrUnknownCandidate, true},
		{"number out of range", ErrInvalidNumber, true},
		{"storage", storageErr("insert ballot", errors.New("disk full")), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRejection(tt.err))
		})
	}
}

func TestMissingFieldError(t *testing.T) {
	err := missingFields("number", "cpf")

	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "missing required field: number, cpf", err.Error())

	var mf *MissingFieldError
	if assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &mf) {
		assert.Equal(t, []string{"number", "cpf"}, mf.Fields)
	}
}

func TestStorageErrKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := storageErr("count ballots", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "count ballots")
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.NoError(t, Options{Scope: ScopeAny}.Validate())
	assert.NoError(t, Options{Scope: ScopeLatest}.Validate())
	assert.Error(t, Options{Scope: "all"}.Validate())
}
