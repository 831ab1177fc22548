package handlers

import (
	"net/http"

	"receipt-ledger/internal/dto"
	"receipt-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the caller's identity. Sign-up, login and sessions
// belong to the external auth provider.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Profile returns the identity the auth gate resolved
// @Summary Current user profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 / AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "AUTH_004"
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthProfileFetchFailed)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(identity))
}
