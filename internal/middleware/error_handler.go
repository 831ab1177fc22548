package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apierrors "receipt-ledger/internal/errors"
	"receipt-ledger/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler formats every error that reaches echo as the standard
// JSON envelope. Details are attached only outside production.
func CustomHTTPErrorHandler(environment string, metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var (
			errorResponse  *apierrors.ErrorResponse
			httpStatus     int
			echoErr        *echo.HTTPError
			validationErrs validator.ValidationErrors
		)

		switch {
		case errors.As(err, &echoErr):
			errorResponse = apierrors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID)
			if environment != "production" && echoErr.Message != nil {
				errorResponse.Details = fmt.Sprintf("%v", echoErr.Message)
			}
			httpStatus = echoErr.Code

		case errors.As(err, &validationErrs):
			errorResponse = apierrors.NewErrorResponse(apierrors.ValidationGeneral, traceID)
			if environment != "production" {
				errorResponse.Details = formatValidationErrors(validationErrs)
			}
			httpStatus = http.StatusBadRequest

		default:
			errorResponse, _ = apierrors.WrapSystemError(err, traceID)
			if environment != "production" {
				errorResponse.Details = err.Error()
			}
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Code,
			"status", httpStatus,
			"message", errorResponse.Error,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		metrics.IncrementCounter("api.error", map[string]string{
			"code":   errorResponse.Code,
			"status": strconv.Itoa(httpStatus),
		})

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) apierrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
		return apierrors.ValidationInvalidBody
	case http.StatusUnauthorized:
		return apierrors.AuthMissingToken
	case http.StatusNotFound:
		return apierrors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return apierrors.SystemMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return apierrors.ValidationBodyTooLarge
	case http.StatusTooManyRequests:
		return apierrors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return apierrors.SystemServiceUnavailable
	default:
		return apierrors.SystemInternalError
	}
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ""
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "base64image":
		return fmt.Sprintf("%s must be base64 image data", fe.Field())
	default:
		return fmt.Sprintf("%s failed validation for '%s'", fe.Field(), fe.Tag())
	}
}
