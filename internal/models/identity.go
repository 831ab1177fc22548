package models

import "time"

// Identity is the caller as resolved by the external auth provider
type Identity struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
