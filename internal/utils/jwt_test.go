package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	subject := "0190c1d2-7b3a-7c4d-8e5f-a1b2c3d4e5f6"
	duration := time.Hour
	key := "secret-key"
	now := time.Now()

	token, err := GenerateJWTToken(issuer, subject, duration, key, now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != subject {
		t.Errorf("expected subject %s, got %s", subject, token.Subject)
	}
	if got := token.ExpiresAtTime().Unix(); got != now.Add(duration).Unix() {
		t.Errorf("expected exp %d, got %d", now.Add(duration).Unix(), got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "user", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "user", 0, "key"},
		{"empty key", "iss", "user", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key, time.Now())
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "user-456", 5*time.Minute, key, time.Now())

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Subject != "user-456" {
		t.Errorf("expected subject user-456, got %s", parsedToken.Subject)
	}
	if parsedToken.SignedString != genToken.SignedString {
		t.Error("expected signed string to be preserved")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "user", time.Hour, "correct-key", time.Now())

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("test-issuer", "user", time.Hour, key, time.Now().Add(-2*time.Hour))

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", "user", time.Hour, key, time.Now())

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	if err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_NoExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "user"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "iss")
	if err == nil {
		t.Error("expected token without exp to be rejected")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "iss")
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", "key", "iss")
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected malformed error, got %v", err)
	}
}
