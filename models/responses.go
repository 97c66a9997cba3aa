package models

// HealthStatus values reported by the /health endpoint.
const (
	HealthStatusUp   = "UP"
	HealthStatusDown = "DOWN"
)

// HealthResponse is the body of the /health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
