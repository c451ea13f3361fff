package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Request types
//
// Pointer fields distinguish an absent field from its zero value,
// so a candidate number of 0 is still a value.

type AdminRequest struct {
	Nome  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

type ElectionRequest struct {
	Cargo     *string `json:"cargo"`
	Ano       *int    `json:"ano"`
	NomeCand1 *string `json:"nomecand1"`
	NomeCand2 *string `json:"nomecand2"`
	NumCand1  *int    `json:"numcand1"`
	NumCand2  *int    `json:"numcand2"`
	NumBranco *int    `json:"numbranco"`
}

type VoterRequest struct {
	Nome  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

type CastVoteRequest struct {
	Number *CandidateNumber `json:"number"`
	CPF    *string          `json:"cpf"`
}

// CandidateNumber accepts a JSON integer or a string of decimal digits,
// so {"number": 12} and {"number": "12"} are the same ballot.
type CandidateNumber int

func (n *CandidateNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("number %q is not an integer", s)
		}
		*n = CandidateNumber(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = CandidateNumber(v)
	return nil
}

// Int returns nil when the number was absent from the request
func (n *CandidateNumber) Int() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

// Response types

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

type ElectionResponse struct {
	Message string   `json:"message"`
	Data    Election `json:"data"`
}

type AdminLookupResponse struct {
	Encontrado bool `json:"encontrado"`
}

type HasVotedResponse struct {
	Votou bool `json:"votou"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// Domain types

type Administrator struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

type Election struct {
	ID        int64  `json:"id"`
	Cargo     string `json:"cargo"`
	Ano       int    `json:"ano"`
	NomeCand1 string `json:"nomecand1"`
	NomeCand2 string `json:"nomecand2"`
	NumCand1  int    `json:"numcand1"`
	NumCand2  int    `json:"numcand2"`
	NumBranco int    `json:"numbranco"`
}

// Accepts reports whether number is one of the election's candidates or the blank option
func (e Election) Accepts(number int) bool {
	return number == e.NumCand1 || number == e.NumCand2 || number == e.NumBranco
}

type Voter struct {
	ID    int64   `json:"id"`
	Nome  string  `json:"nome"`
	CPF   string  `json:"cpf"`
	Email *string `json:"email"`
}

type Ballot struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	CPF    string `json:"cpf"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
