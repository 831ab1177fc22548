package dto

import "time"

const (
	HealthStatusOK       = "OK"
	HealthStatusDegraded = "DEGRADED"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}
