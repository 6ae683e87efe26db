package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/utils"
)

const testSignKey = "test-sign-key"

func newTestTokenService(t *testing.T, cfg config.App) *tokenService {
	t.Helper()
	svc, err := NewTokenService(cfg)
	require.NoError(t, err)
	return svc.(*tokenService)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	t.Fatalf("cookie %q not set", utils.SessionCookieName)
	return nil
}

func TestNewTokenService_MissingSignKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		svc, err := NewTokenService(config.App{TokenSignKey: key})
		assert.ErrorIs(t, err, ErrMissingSigningKey)
		assert.Nil(t, svc)
	}
}

func TestNewTokenService_Defaults(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey})

	assert.Equal(t, DefaultTokenDuration, svc.duration)
	assert.Equal(t, DefaultTokenIssuer, svc.issuer)
	assert.True(t, svc.secureCookie)
}

func TestNewTokenService_DevelopmentDisablesSecure(t *testing.T) {
	svc := newTestTokenService(t, config.App{
		TokenSignKey:  testSignKey,
		Environment:   "development",
		TokenIssuer:   "custom",
		TokenDuration: time.Hour,
	})

	assert.False(t, svc.secureCookie)
	assert.Equal(t, "custom", svc.issuer)
	assert.Equal(t, time.Hour, svc.duration)
}

func TestTokenService_MintAndVerify(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey})
	rec := httptest.NewRecorder()

	token, err := svc.Mint(rec, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-1", token.Subject)

	c := sessionCookie(t, rec)
	assert.Equal(t, token.SignedString, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, int(DefaultTokenDuration.Seconds()), c.MaxAge)

	subject, err := svc.Verify(c.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestTokenService_Mint_EmptySubject(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey})
	rec := httptest.NewRecorder()

	_, err := svc.Mint(rec, "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.Empty(t, rec.Result().Cookies())
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey, TokenDuration: time.Hour})
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Mint(httptest.NewRecorder(), "user-1")
	require.NoError(t, err)

	_, err = svc.Verify(token.SignedString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey})
	token, err := svc.Mint(httptest.NewRecorder(), "user-1")
	require.NoError(t, err)

	other := newTestTokenService(t, config.App{TokenSignKey: "another-key"})
	foreign, err := other.Mint(httptest.NewRecorder(), "user-1")
	require.NoError(t, err)

	otherIssuer := newTestTokenService(t, config.App{TokenSignKey: testSignKey, TokenIssuer: "elsewhere"})
	wrongIssuer, err := otherIssuer.Mint(httptest.NewRecorder(), "user-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered", token: token.SignedString + "x"},
		{name: "foreign key", token: foreign.SignedString},
		{name: "wrong issuer", token: wrongIssuer.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}

func TestTokenService_Clear(t *testing.T) {
	svc := newTestTokenService(t, config.App{TokenSignKey: testSignKey, Environment: "development"})
	rec := httptest.NewRecorder()

	svc.Clear(rec)

	c := sessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
}
