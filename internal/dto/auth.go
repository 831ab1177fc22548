package dto

import (
	"time"

	"receipt-ledger/internal/models"
)

// ProfileResponse is the identity the auth gate resolved for the caller
type ProfileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at"`
}

func NewProfileResponse(identity *models.Identity) ProfileResponse {
	return ProfileResponse{
		ID:        identity.ID,
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
	}
}
