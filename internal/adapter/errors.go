package adapter

import "errors"

var (
	// ErrInvalidImagePayload is returned when the profile picture payload is
	// neither a decodable image nor, where allowed, an http(s) URL.
	ErrInvalidImagePayload = errors.New("invalid image payload")

	// ErrUploadFailed wraps every failure of the upload provider itself.
	ErrUploadFailed = errors.New("image upload failed")
)

// Upstream HTTP failures, always reported together with [ErrUploadFailed].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("upload client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
