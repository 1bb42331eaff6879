package service

import (
	"context"
	"time"
)

// HealthStatus represents the health status of the service
type HealthStatus string

const (
	HealthStatusHealthy HealthStatus = "healthy"
)

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Version   string       `json:"version"`
	Source    string       `json:"source"`
	Uptime    string       `json:"uptime"`
}

// CheckHealth reports liveness. The upstream provider is deliberately not
// probed here: a dead provider should fail individual quote requests, not
// take the whole process out of rotation.
func (s *quoteService) CheckHealth(ctx context.Context) HealthResponse {
	return HealthResponse{
		Status:    HealthStatusHealthy,
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Source:    s.sourceName,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	}
}
