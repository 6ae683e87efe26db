package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/auth/check",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/auth/check"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/auth/signup",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
				`"size":7`,
			},
		},
		{
			name:          "401 no body",
			method:        http.MethodPut,
			path:          "/api/auth/update-profile",
			handlerStatus: http.StatusUnauthorized,
			checkLogContains: []string{
				`"status":401`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			(&Handler{}).withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}
