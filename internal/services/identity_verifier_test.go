package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		token   string
		wantErr error
	}{
		{"standard", "Bearer abc.def", "abc.def", nil},
		{"lowercase scheme", "bearer abc", "abc", nil},
		{"extra spaces", "Bearer   abc  ", "abc", nil},
		{"missing", "", "", ErrNoCredential},
		{"blank", "   ", "", ErrNoCredential},
		{"wrong scheme", "Basic dXNlcg==", "", ErrInvalidAuthHeader},
		{"scheme only", "Bearer ", "", ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestRemoteIdentityVerifier(t *testing.T) {
	userID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer good":
			_, _ = w.Write([]byte(`{"id":"` + userID + `","email":"owner@example.com","created_at":"2025-01-02T03:04:05Z"}`))
		case "Bearer no-id":
			_, _ = w.Write([]byte(`{"email":"ghost@example.com"}`))
		case "Bearer broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		}
	}))
	defer server.Close()

	verifier := NewRemoteIdentityVerifier(&config.AuthConfig{
		ProviderURL:    server.URL,
		ProviderAPIKey: "anon-key",
		VerifyTimeout:  2 * time.Second,
	}, discardLogger())
	ctx := context.Background()

	identity, err := verifier.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "owner@example.com", identity.Email)
	require.NotNil(t, identity.CreatedAt)
	assert.Equal(t, 2025, identity.CreatedAt.Year())

	_, err = verifier.Verify(ctx, "expired")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = verifier.Verify(ctx, "no-id")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = verifier.Verify(ctx, "broken")
	assert.ErrorIs(t, err, ErrIdentityUnavailable)

	_, err = verifier.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestRemoteIdentityVerifier_ProviderDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	verifier := NewRemoteIdentityVerifier(&config.AuthConfig{ProviderURL: server.URL, VerifyTimeout: time.Second}, discardLogger())

	_, err := verifier.Verify(context.Background(), "token")

	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func signHS256(t *testing.T, secret []byte, claims models.ProviderClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func providerClaims(subject string, expiresIn time.Duration) models.ProviderClaims {
	now := time.Now()
	return models.ProviderClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://auth.example.com/auth/v1",
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Email: "owner@example.com",
		Role:  "authenticated",
	}
}

func TestJWTIdentityVerifier_HS256(t *testing.T) {
	secret := []byte("super-secret-signing-key")
	verifier, err := NewJWTIdentityVerifier(&config.AuthConfig{JWTSecret: secret, JWTIssuer: "https://auth.example.com/auth/v1"})
	require.NoError(t, err)
	ctx := context.Background()
	subject := uuid.NewString()

	identity, err := verifier.Verify(ctx, signHS256(t, secret, providerClaims(subject, time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, subject, identity.ID)
	assert.Equal(t, "owner@example.com", identity.Email)

	_, err = verifier.Verify(ctx, signHS256(t, secret, providerClaims(subject, -time.Minute)))
	assert.ErrorIs(t, err, ErrInvalidCredential, "expired")

	_, err = verifier.Verify(ctx, signHS256(t, []byte("other-secret"), providerClaims(subject, time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidCredential, "wrong secret")

	_, err = verifier.Verify(ctx, signHS256(t, secret, providerClaims("", time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidCredential, "missing subject")

	wrongIssuer := providerClaims(subject, time.Hour)
	wrongIssuer.Issuer = "https://evil.example.com"
	_, err = verifier.Verify(ctx, signHS256(t, secret, wrongIssuer))
	assert.ErrorIs(t, err, ErrInvalidCredential, "wrong issuer")

	noExpiry := providerClaims(subject, time.Hour)
	noExpiry.ExpiresAt = nil
	_, err = verifier.Verify(ctx, signHS256(t, secret, noExpiry))
	assert.ErrorIs(t, err, ErrInvalidCredential, "missing exp")

	_, err = verifier.Verify(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTIdentityVerifier_RS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier, err := NewJWTIdentityVerifier(&config.AuthConfig{JWTPublicKey: &key.PublicKey})
	require.NoError(t, err)

	subject := uuid.NewString()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, providerClaims(subject, time.Hour)).SignedString(key)
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, subject, identity.ID)

	// HS256 is not accepted when only a public key is configured
	hsToken := signHS256(t, []byte("whatever"), providerClaims(subject, time.Hour))
	_, err = verifier.Verify(context.Background(), hsToken)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestNewIdentityVerifier(t *testing.T) {
	remote, err := NewIdentityVerifier(&config.AuthConfig{Mode: config.AuthModeRemote, ProviderURL: "http://auth"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &RemoteIdentityVerifier{}, remote)

	local, err := NewIdentityVerifier(&config.AuthConfig{Mode: config.AuthModeJWT, JWTSecret: []byte("s")}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &JWTIdentityVerifier{}, local)

	_, err = NewIdentityVerifier(&config.AuthConfig{Mode: config.AuthModeJWT}, discardLogger())
	assert.ErrorIs(t, err, ErrMissingVerifierKey)

	_, err = NewIdentityVerifier(&config.AuthConfig{Mode: "ldap"}, discardLogger())
	assert.ErrorIs(t, err, ErrUnsupportedAuthMode)
}

func TestParseOwnerID(t *testing.T) {
	id := uuid.New()

	owner, err := ParseOwnerID(&models.Identity{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, owner)

	_, err = ParseOwnerID(&models.Identity{ID: "user-123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = ParseOwnerID(&models.Identity{ID: uuid.Nil.String()})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = ParseOwnerID(nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
