package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoCredential        = errors.New("no credential")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header format")
	ErrUnsupportedAuthMode = errors.New("unsupported auth mode")
	ErrMissingVerifierKey  = errors.New("no verification key configured")
)

// ExtractBearerToken pulls the token out of an Authorization header.
// The scheme is matched case-insensitively; a missing header is ErrNoCredential.
func ExtractBearerToken(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrNoCredential
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// NewIdentityVerifier picks the verifier matching cfg.Mode
func NewIdentityVerifier(cfg *config.AuthConfig, logger *slog.Logger) (IdentityVerifierInterface, error) {
	switch cfg.Mode {
	case config.AuthModeRemote:
		return NewRemoteIdentityVerifier(cfg, logger), nil
	case config.AuthModeJWT:
		verifier, err := NewJWTIdentityVerifier(cfg)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAuthMode, cfg.Mode)
	}
}

// RemoteIdentityVerifier asks the provider's user endpoint who owns the token
type RemoteIdentityVerifier struct {
	config *config.AuthConfig
	client *http.Client
	logger *slog.Logger
}

// NewRemoteIdentityVerifier creates a verifier that calls GET {provider}/auth/v1/user
func NewRemoteIdentityVerifier(cfg *config.AuthConfig, logger *slog.Logger) *RemoteIdentityVerifier {
	return &RemoteIdentityVerifier{
		config: cfg,
		client: &http.Client{Timeout: cfg.VerifyTimeout},
		logger: logger,
	}
}

type providerUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func (v *RemoteIdentityVerifier) Verify(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrNoCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.config.ProviderURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.config.ProviderAPIKey != "" {
		req.Header.Set("apikey", v.config.ProviderAPIKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.ErrorContext(ctx, "identity provider request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrIdentityUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var user providerUser
		if err := json.Unmarshal(body, &user); err != nil {
			return nil, fmt.Errorf("%w: decode user: %v", ErrInvalidCredential, err)
		}
		if user.ID == "" {
			return nil, ErrInvalidCredential
		}
		return &models.Identity{ID: user.ID, Email: user.Email, CreatedAt: parseProviderTime(user.CreatedAt)}, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, ErrInvalidCredential

	default:
		v.logger.ErrorContext(ctx, "identity provider returned unexpected status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrIdentityUnavailable, resp.StatusCode)
	}
}

func parseProviderTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &parsed
}

// JWTIdentityVerifier validates provider-issued tokens locally
type JWTIdentityVerifier struct {
	config  *config.AuthConfig
	methods []string
}

// NewJWTIdentityVerifier accepts RS256 when a public key is configured and HS256 when a secret is
func NewJWTIdentityVerifier(cfg *config.AuthConfig) (*JWTIdentityVerifier, error) {
	var methods []string
	if cfg.JWTPublicKey != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	if len(cfg.JWTSecret) > 0 {
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	if len(methods) == 0 {
		return nil, ErrMissingVerifierKey
	}

	return &JWTIdentityVerifier{config: cfg, methods: methods}, nil
}

func (v *JWTIdentityVerifier) Verify(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrNoCredential
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
	}
	if v.config.JWTIssuer != "" {
		options = append(options, jwt.WithIssuer(v.config.JWTIssuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &models.ProviderClaims{}, v.keyFunc, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	claims, ok := parsed.Claims.(*models.ProviderClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidCredential
	}

	identity := &models.Identity{ID: claims.Subject, Email: claims.Email}
	if claims.IssuedAt != nil {
		issued := claims.IssuedAt.Time
		identity.CreatedAt = &issued
	}
	return identity, nil
}

func (v *JWTIdentityVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodRSA:
		if v.config.JWTPublicKey == nil {
			return nil, ErrMissingVerifierKey
		}
		return v.config.JWTPublicKey, nil
	case *jwt.SigningMethodHMAC:
		if len(v.config.JWTSecret) == 0 {
			return nil, ErrMissingVerifierKey
		}
		return v.config.JWTSecret, nil
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

// ParseOwnerID turns a verified identity into the owner key used by every expense query
func ParseOwnerID(identity *models.Identity) (uuid.UUID, error) {
	if identity == nil || identity.ID == "" {
		return uuid.Nil, ErrInvalidCredential
	}
	id, err := uuid.Parse(identity.ID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: identity id is not a UUID", ErrInvalidCredential)
	}
	return id, nil
}
