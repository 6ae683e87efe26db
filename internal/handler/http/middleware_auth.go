package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/utils"
)

// auth is an HTTP middleware that enforces cookie session authentication.
//
// It reads the session cookie, resolves it to a user via
// [service.AuthService.Authenticate] and stores that user in the request
// context (see [utils.WithUser]) before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - the cookie is absent or empty ([ErrNoTokenProvided]);
//   - the token is forged, malformed or expired;
//   - the token names a user that no longer exists.
//
// Store failures while loading the user surface as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := utils.SessionTokenFromRequest(r)
		if tokenString == "" {
			writeError(w, r, ErrNoTokenProvided)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("user_id", user.ID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
