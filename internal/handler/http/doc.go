// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as session authentication, request
// tracing, access logging, CORS, request timeouts, and schema validation are
// handled in this package before requests are delegated to the service layer.
//
// Authentication comes in two flavours: the hard session gate (the auth
// middleware, which rejects requests outright) and the identity soft probe
// (probeIdentity, which only informs branching and never blocks). All
// failures, from any route, exit through a single error-to-status mapper.
package http
