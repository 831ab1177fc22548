package handlers

import (
	"fmt"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

func getIdentityFromContext(c echo.Context) (*models.Identity, error) {
	identity, ok := c.Get(IdentityContextKey).(*models.Identity)
	if !ok || identity == nil {
		return nil, ErrUnauthorized
	}
	return identity, nil
}
