package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HealthStatus is the result of a gateway liveness probe.
type HealthStatus struct {
	Status          string `json:"status"`
	GatewayURL      string `json:"gateway_url"`
	ResponseTimeMS  int64  `json:"response_time_ms"`
	GatewayResponse string `json:"gateway_response,omitempty"`
}

// HealthCheck probes the gateway root endpoint. Any 2xx response means
// healthy; the body is passed through for display but never interpreted.
// The probe runs under the shorter health timeout rather than the general
// request timeout.
func (c *Client) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}

	start := time.Now()
	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return &HealthStatus{
		Status:          "healthy",
		GatewayURL:      c.baseURL,
		ResponseTimeMS:  time.Since(start).Milliseconds(),
		GatewayResponse: strings.TrimSpace(string(raw)),
	}, nil
}
