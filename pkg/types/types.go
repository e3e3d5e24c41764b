// Package types holds shared API plumbing types.
package types

// Response is a generic wrapper for Huma responses.
// Usage: Response[HealthBody] instead of a one-off HealthOutput struct.
type Response[T any] struct {
	Body T
}

// EmptyResponse represents a simple success acknowledgement.
type EmptyResponse struct {
	Success bool `json:"success" doc:"Whether the operation succeeded" example:"true"`
}
