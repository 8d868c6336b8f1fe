package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/datafund/swarm-provenance-mcp/pkg/config"
)

// Client talks to the Swarm gateway HTTP API. One client is safe for
// concurrent use; it carries no per-call state beyond the shared transport.
type Client struct {
	baseURL       string
	userAgent     string
	httpClient    *http.Client
	healthTimeout time.Duration
}

// New builds a gateway client from cfg. The configured request timeout
// bounds every call except health checks, which use the shorter health
// timeout.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.GatewayURL,
		userAgent: cfg.UserAgent(),
		httpClient: &http.Client{
			Timeout: cfg.Timeouts.Request,
		},
		healthTimeout: cfg.Timeouts.Health,
	}
}

// BaseURL returns the gateway endpoint this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out. Non-2xx responses become a *StatusError carrying the
// response body.
func (c *Client) doJSON(ctx context.Context, method, url string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("gateway: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	raw, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

func unmarshalJSON(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

// do sends the request and returns the response body, converting non-2xx
// statuses into *StatusError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)

	zap.L().Debug("gateway request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: string(raw),
		}
	}
	return raw, nil
}
