// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned by the auth middleware when a protected
	// route is called without the session cookie.
	ErrNoTokenProvided = errors.New("no session token provided")

	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected request type.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrRequestTooLarge is returned when the request body exceeds the
	// configured size limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrNoUserInContext is returned by protected handlers reached without
	// the auth middleware having attached a user.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
