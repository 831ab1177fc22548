package models

import "github.com/golang-jwt/jwt/v5"

// ProviderClaims are the claims the auth provider puts in its access tokens.
// Subject carries the user id.
type ProviderClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
