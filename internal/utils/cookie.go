package utils

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = "my_jwt_token"

// SetSessionCookie attaches token to w as the session cookie.
//
// The cookie is HttpOnly and SameSite=Strict so page scripts cannot read it
// and cross-site requests do not carry it. secure marks it HTTPS-only and
// must be true everywhere but local development.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie overwrites the session cookie with an empty value that
// expires immediately (Max-Age=0, Expires in 1970).
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SessionTokenFromRequest returns the raw session token of r, or "" when
// the cookie is absent or empty.
func SessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
