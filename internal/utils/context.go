// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, JSON responses, session cookies,
// password hashing, identifier generation, HTTP client initialization and
// JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the
// authenticated [models.User].
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// ok is false when no user was attached (the request did not pass through
// the auth middleware) or the value has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
