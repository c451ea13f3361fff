// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the urna API.

NewRouter builds the registries and handlers on a shared db.Gateway and
returns an http.Handler with CORS applied:

	handler := router.NewRouter(gw, cfg, metrics.New())

# Endpoints

	GET  /health
	GET  /metrics

	POST /administrador
	GET  /administrador
	GET  /administrador/cpf/{cpf}

	POST /eleicao
	GET  /eleicao

	POST /votos
	GET  /votos
	GET  /votos/count/{number}
	GET  /votos/cpf/{cpf}

	POST /eleitores
	GET  /eleitores
	GET  /eleitores/{id}
	GET  /eleitores/cpf/{cpf}

Every API route is wrapped with request logging and Prometheus metrics
labelled by route pattern.
*/
package router
