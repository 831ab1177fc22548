package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON error envelope every route returns.
// Error carries the human-readable message; Details is operator-facing and
// only attached outside production.
type ErrorResponse struct {
	Error    string      `json:"error"`
	Code     string      `json:"code"`
	Details  string      `json:"details,omitempty"`
	TraceID  string      `json:"trace_id,omitempty"`
	Fallback interface{} `json:"fallback,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails attaches an operator-facing detail string
func WithDetails(details string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error = message
	}
}

// WithFallback attaches the record the extraction pipeline would have used
func WithFallback(fallback interface{}) ErrorOption {
	return func(er *ErrorResponse) {
		er.Fallback = fallback
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error:   GetErrorMessage(code),
		Code:    string(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// WrapSystemError wraps an internal error with a generic system error message
// This prevents exposure of internal implementation details to clients
// The internal error is returned separately for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError wraps a database error with a generic system error message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationMissingImage, ValidationInvalidImage, ValidationInvalidBody:
		return http.StatusBadRequest

	case AuthMissingToken, AuthInvalidToken, AuthFailed:
		return http.StatusUnauthorized

	case ExpenseNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	case SystemMethodNotAllowed:
		return http.StatusMethodNotAllowed

	case ValidationBodyTooLarge:
		return http.StatusRequestEntityTooLarge

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// Extraction validation failures stay 500: the client cannot fix a model response.
	case AuthProfileFetchFailed, ExpenseListFailed, ExpenseFlaggedFailed, ExpenseDashboardFailed,
		ExpenseDeleteFailed, ReceiptProcessingFailed, ReceiptSaveFailed,
		SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Error, er.TraceID)
}
