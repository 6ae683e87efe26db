package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx provider response into an error wrapping
// both [ErrUploadFailed] and the sentinel of the status class. message is the
// provider's error text, if it sent one.
func mapHTTPError(resp *resty.Response, message string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(message)
	if body == "" {
		body = strings.TrimSpace(string(resp.Body()))
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUploadFailed, ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUploadFailed, resp.StatusCode(), body)
	}
}
