// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID is taken from X-Request-ID when the
client sends one, generated otherwise, and echoed in the response.

	id := middleware.GetRequestID(r.Context())

# Metrics

WithMetrics counts requests and observes latency labeled by the matched
route pattern, so path parameters do not explode label cardinality:

	middleware.WithMetrics(m, handler)

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(mux)

Any origin is allowed; OPTIONS preflight requests are answered directly.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "CPF já cadastrado!")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
*/
package middleware
