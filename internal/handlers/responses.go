package handlers

import (
	"receipt-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through these helpers:
//
// 1. SendError for client errors and known failure modes with a dedicated code.
//    Detail strings go through DetailsOutsideProduction.
//
// 2. Unexpected internal errors are returned as-is. CustomHTTPErrorHandler logs
//    them and the client only sees the generic SYSTEM_001 message.
//
// Handlers never return echo.NewHTTPError or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// UserIDContextKey holds the caller's owner id as a uuid.UUID
	UserIDContextKey = "user_id"
	// IdentityContextKey holds the *models.Identity the auth gate resolved
	IdentityContextKey = "identity"
	// ErrorCodeContextKey holds the errors.ErrorCode of a response written by SendError
	ErrorCodeContextKey = "error_code"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	c.Set(ErrorCodeContextKey, code)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// DetailsOutsideProduction attaches details unless environment is production
func DetailsOutsideProduction(environment, details string) errors.ErrorOption {
	if environment == "production" || details == "" {
		return func(*errors.ErrorResponse) {}
	}
	return errors.WithDetails(details)
}
