// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"strings"
)

// Caller-fixable errors are detected before any query runs; business-rule
// errors come from a read or a constraint violation. ErrStorage wraps every
// other gateway failure.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFormat    = errors.New("invalid cpf format")
	ErrInvalidNumber    = errors.New("number out of range")
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate")
	ErrNoActiveElection = errors.New("no election registered")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrNotRegistered    = errors.New("voter not registered")
	ErrUnknownCandidate = errors.New("candidate number not in current election")
	ErrStorage          = errors.New("storage error")
)

// IsRejection reports whether err is a validation or business-rule error,
// as opposed to a storage fault.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrMissingField, ErrInvalidFormat, ErrInvalidNumber, ErrNotFound, ErrDuplicate,
		ErrNoActiveElection, ErrAlreadyVoted, ErrNotRegistered, ErrUnknownCandidate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MissingFieldError names the absent fields. It matches ErrMissingField.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingField.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missingFields(fields ...string) error {
	return &MissingFieldError{Fields: fields}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
