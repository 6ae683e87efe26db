package http

import "net/http"

// withBodyLimit caps every request body at cfg.MaxBodyBytes. Reads past the
// limit fail with *http.MaxBytesError, which decodeJSON reports as
// [ErrRequestTooLarge].
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
