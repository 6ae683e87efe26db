package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-server/internal/adapter"
	"github.com/MKhiriev/go-auth-server/internal/app"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/service"
	"github.com/MKhiriev/go-auth-server/internal/store"
	"github.com/MKhiriev/go-auth-server/internal/utils"
)

// The sentinels below are disjoint: no error produced by the lower layers
// wraps more than one of them, so map iteration order does not matter.
var errorStatusMap = map[error]int{
	service.ErrMissingSignupFields: http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrPasswordTooLong:     http.StatusBadRequest,
	service.ErrMissingLoginFields:  http.StatusBadRequest,
	service.ErrProfilePicRequired:  http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrExpiredToken:        http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,

	adapter.ErrInvalidImagePayload: http.StatusBadRequest,
	adapter.ErrUploadFailed:        http.StatusBadGateway,

	ErrNoTokenProvided: http.StatusUnauthorized,
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrRequestTooLarge: http.StatusRequestEntityTooLarge,
}

var errorMessageMap = map[error]string{
	service.ErrMissingSignupFields: app.MsgSignupFieldsRequired,
	service.ErrPasswordTooShort:    app.MsgPasswordTooShort,
	service.ErrPasswordTooLong:     app.MsgPasswordTooLong,
	service.ErrMissingLoginFields:  app.MsgLoginFieldsRequired,
	service.ErrProfilePicRequired:  app.MsgProfilePicRequired,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrInvalidToken:        app.MsgInvalidToken,
	service.ErrExpiredToken:        app.MsgInvalidToken,

	store.ErrEmailAlreadyExists: app.MsgEmailAlreadyExists,

	adapter.ErrInvalidImagePayload: app.MsgInvalidImagePayload,
	adapter.ErrUploadFailed:        app.MsgImageUploadFailed,

	ErrNoTokenProvided: app.MsgNoTokenProvided,
	ErrInvalidJSON:     app.MsgInvalidJSON,
	ErrRequestTooLarge: app.MsgRequestTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
// Client errors are logged at debug level, everything else as an error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteMessage(w, messageFromError(err), status); werr != nil {
		log.Err(werr).Msg("error writing response")
	}
}
