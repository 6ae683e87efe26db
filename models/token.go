package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token together with its decoded registered claims.
//
// SignedString holds the compact JWS form that travels in the session
// cookie. Subject is a cached copy of the "sub" claim (the user ID).
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// Subject is the user ID the token was issued for.
	Subject string `json:"-"`
}

// ExpiresAtTime returns the expiry instant or the zero time when the token
// carries no "exp" claim.
func (t Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact signed token.
func (t Token) String() string {
	return t.SignedString
}
