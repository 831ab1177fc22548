package middleware

import (
	"errors"
	"log/slog"

	apierrors "receipt-ledger/internal/errors"
	"receipt-ledger/internal/handlers"
	"receipt-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth resolves the bearer token through verifier and stores the caller's
// owner id and identity on the context. Every failure is a 401 with a generic message.
func RequireAuth(
	verifier services.IdentityVerifierInterface,
	audit services.AuditLoggerInterface,
	metrics services.MetricsRecorderInterface,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token, err := services.ExtractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if errors.Is(err, services.ErrNoCredential) {
				metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "missing_token"})
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}
			if err != nil {
				return reject(c, audit, metrics, "malformed_header", err)
			}

			identity, err := verifier.Verify(ctx, token)
			if err != nil {
				if errors.Is(err, services.ErrIdentityUnavailable) {
					return reject(c, audit, metrics, "provider_unavailable", err)
				}
				return reject(c, audit, metrics, "invalid_token", err)
			}

			userID, err := services.ParseOwnerID(identity)
			if err != nil {
				return reject(c, audit, metrics, "invalid_identity", err)
			}

			metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "authenticated"})
			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.IdentityContextKey, identity)

			return next(c)
		}
	}
}

func reject(c echo.Context, audit services.AuditLoggerInterface, metrics services.MetricsRecorderInterface, reason string, cause error) error {
	ctx := c.Request().Context()

	level := slog.LevelWarn
	if reason == "provider_unavailable" {
		level = slog.LevelError
	}
	slog.Log(ctx, level, "request rejected by auth gate",
		"trace_id", GetTraceID(c),
		"reason", reason,
		"client_ip", c.RealIP(),
		"error", cause,
	)

	audit.LogAuthenticationFailed(ctx, reason)
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": reason})
	return handlers.SendError(c, apierrors.AuthInvalidToken)
}
