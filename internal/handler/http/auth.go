package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-server/internal/app"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/models"
)

// signup creates an account, sets the session cookie and answers 201 with
// the public user.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.TokenService.Mint(w, registeredUser.ID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", registeredUser.ID).Msg("session started after signup")

	h.writeJSON(w, r, registeredUser.Public(), http.StatusCreated)
}

// login verifies credentials, sets the session cookie and answers 200 with
// the public user.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.TokenService.Mint(w, foundUser.ID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	h.writeJSON(w, r, foundUser.Public(), http.StatusOK)
}

// logout clears the session cookie. It needs no valid session and always
// succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.TokenService.Clear(w)
	h.writeJSON(w, r, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

// updateProfile uploads the new picture of the authenticated user and
// answers with the full updated record.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateProfilePic(ctx, user.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, updatedUser, http.StatusOK)
}

// checkAuth answers with the user the auth middleware resolved.
func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeJSON decodes the request body into dst. An empty body decodes as
// an empty object, so missing fields are reported by validation rather
// than as malformed JSON.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)

	var maxBytesErr *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
