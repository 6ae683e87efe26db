package adapter

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImagePayload is a parsed profile picture payload. Exactly one of URL or
// Data is set.
type ImagePayload struct {
	// URL is set for http(s) payloads.
	URL string

	// Data holds the decoded image bytes of a data URI or base64 payload.
	Data []byte

	// MIME is the sniffed media type of Data, e.g. "image/png".
	MIME string

	// Extension is the file extension matching MIME, with leading dot.
	Extension string
}

// IsRemote reports whether the payload points at an existing image.
func (p ImagePayload) IsRemote() bool {
	return p.URL != ""
}

// DataURI renders decoded bytes back as a base64 data URI.
func (p ImagePayload) DataURI() string {
	return "data:" + p.MIME + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ParseImagePayload classifies and validates payload.
//
// Data URIs and bare base64 are decoded and their content sniffed; only
// image/* content is accepted regardless of the media type the data URI
// claims. Anything else yields [ErrInvalidImagePayload].
func ParseImagePayload(payload string) (ImagePayload, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return ImagePayload{}, ErrInvalidImagePayload
	}

	if isHTTPURL(payload) {
		return ImagePayload{URL: payload}, nil
	}

	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		header, data, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return ImagePayload{}, fmt.Errorf("%w: data URI must be base64 encoded", ErrInvalidImagePayload)
		}
		encoded = data
	}

	raw, err := decodeBase64(encoded)
	if err != nil || len(raw) == 0 {
		return ImagePayload{}, fmt.Errorf("%w: not valid base64", ErrInvalidImagePayload)
	}

	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return ImagePayload{}, fmt.Errorf("%w: content is %s", ErrInvalidImagePayload, mime.String())
	}

	return ImagePayload{
		Data:      raw,
		MIME:      mime.String(),
		Extension: mime.Extension(),
	}, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "=")
	if strings.ContainsAny(s, "-_") {
		return base64.RawURLEncoding.DecodeString(s)
	}

	return base64.RawStdEncoding.DecodeString(s)
}
