package middleware

import (
	"strconv"

	apierrors "receipt-ledger/internal/errors"
	"receipt-ledger/internal/handlers"
	"receipt-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ErrorMetrics counts error bodies written by handlers and middleware through SendError.
// Errors returned up the chain are counted by CustomHTTPErrorHandler instead.
func ErrorMetrics(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				return err
			}

			code, ok := c.Get(handlers.ErrorCodeContextKey).(apierrors.ErrorCode)
			if !ok {
				return nil
			}

			metrics.IncrementCounter("api.error", map[string]string{
				"code":   string(code),
				"status": strconv.Itoa(c.Response().Status),
			})
			return nil
		}
	}
}
