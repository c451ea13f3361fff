// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/danielhkuo/urna/middleware"
)

// decodeBody parses the JSON body into v. An empty body leaves v at its
// zero value so missing fields are reported by name.
func decodeBody(r *http.Request, v interface{}) error {
	err := middleware.ParseJSONBody(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
