package sdk

import (
	"context"
	"net/http"
)

// Health is the service status reported by the health endpoint.
type Health struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Database      string `json:"database"`
	DatabaseError string `json:"database_error,omitempty"`
}

// Health probes the service. The endpoint lives outside the API prefix and
// needs no credentials.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.Do(ctx, http.MethodGet, "health/", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
