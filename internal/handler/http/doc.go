// Package http implements the HTTP transport layer of the auth server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as cookie authentication, request tracing,
// access logging, CORS and body size limits are handled in this package
// before requests are delegated to the service layer.
package http
