// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names follow the wire format of the existing clients, which is
why they are in Portuguese (nome, cpf, ano, ...).

# Request Types

  - AdminRequest: nome, cpf, email
  - ElectionRequest: cargo, ano, nomecand1, nomecand2, numcand1, numcand2, numbranco
  - VoterRequest: nome, cpf, email (optional)
  - CastVoteRequest: number, cpf

Numeric and election fields are pointers so that an absent field can be told
apart from zero.

# Response Types

  - MessageResponse: mensagem
  - ElectionResponse: message, data
  - AdminLookupResponse: encontrado
  - HasVotedResponse: votou
  - CountResponse: count
  - ErrorResponse: error

# Domain Types

  - Administrator: registered administrator
  - Election: election definition keyed by ano
  - Voter: eligible voter keyed by cpf
  - Ballot: one recorded vote per cpf
*/
package models
