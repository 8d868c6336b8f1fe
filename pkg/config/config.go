// Package config defines the runtime configuration for the MCP server:
// gateway endpoint, default stamp parameters, server identity strings, and
// operation timeouts. It also provides validation, defaulting helpers, and
// environment-based loading.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix applied to environment variables consulted by
// FromEnv, e.g. SWARM_MCP_GATEWAY_URL.
const EnvPrefix = "SWARM_MCP"

// Defaults applied by Validate for unset fields.
const (
	DefaultGatewayURL    = "https://provenance-gateway.datafund.io"
	DefaultStampAmount   = 2000000000
	DefaultStampDepth    = 17
	DefaultServerName    = "swarm-provenance-mcp"
	DefaultServerVersion = "0.1.0"
)

// Config holds all settings required to initialize the gateway client and
// the MCP server. Use Validate to fill implicit defaults and to check for
// required fields.
type Config struct {
	// GatewayURL is the base URL of the swarm_connect gateway. Trailing
	// slashes are stripped.
	// Default: https://provenance-gateway.datafund.io
	GatewayURL string `json:"gateway_url" yaml:"gateway_url"`
	// DefaultStampAmount is the amount in wei used when a purchase_stamp
	// call omits amount. Default: 2000000000.
	DefaultStampAmount uint64 `json:"default_stamp_amount" yaml:"default_stamp_amount"`
	// DefaultStampDepth is the depth used when a purchase_stamp call omits
	// depth. Default: 17.
	DefaultStampDepth int `json:"default_stamp_depth" yaml:"default_stamp_depth"`
	// ServerName identifies this MCP server to clients and in the
	// User-Agent header sent to the gateway. Default: swarm-provenance-mcp.
	ServerName string `json:"server_name" yaml:"server_name"`
	// ServerVersion is reported alongside ServerName. Default: 0.1.0.
	ServerVersion string `json:"server_version" yaml:"server_version"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls outbound gateway call deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Request time.Duration // stamp and data operations
	Health  time.Duration // liveness probe (shorter)
}

// Validate normalizes the configuration by applying implicit defaults for
// GatewayURL, stamp parameters, and server identity, and verifies that the
// resulting gateway URL is usable. The defaults mean a zero Config validates
// cleanly; an error is only possible when an explicitly set value is invalid.
func (c *Config) Validate() error {
	if c.GatewayURL == "" {
		c.GatewayURL = DefaultGatewayURL
	}
	c.GatewayURL = strings.TrimRight(c.GatewayURL, "/")

	if !strings.HasPrefix(c.GatewayURL, "http://") && !strings.HasPrefix(c.GatewayURL, "https://") {
		return errors.New("gateway URL must be an http(s) endpoint")
	}

	if c.DefaultStampAmount == 0 {
		c.DefaultStampAmount = DefaultStampAmount
	}
	if c.DefaultStampDepth == 0 {
		c.DefaultStampDepth = DefaultStampDepth
	}
	if c.ServerName == "" {
		c.ServerName = DefaultServerName
	}
	if c.ServerVersion == "" {
		c.ServerVersion = DefaultServerVersion
	}

	c.Timeouts = c.Timeouts.WithDefaults()

	return nil
}

// UserAgent returns the "<name>/<version>" string attached to every gateway
// request.
func (c *Config) UserAgent() string {
	return c.ServerName + "/" + c.ServerVersion
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Request: 30s
//	Health:  10s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Request == 0 {
		tt.Request = 30 * time.Second
	}
	if tt.Health == 0 {
		tt.Health = 10 * time.Second
	}
	return tt
}

// FromEnv builds a Config from SWARM_MCP_* environment variables, falling
// back to the documented defaults for anything unset. Recognized variables:
//
//	SWARM_MCP_GATEWAY_URL
//	SWARM_MCP_DEFAULT_STAMP_AMOUNT
//	SWARM_MCP_DEFAULT_STAMP_DEPTH
//	SWARM_MCP_SERVER_NAME
//	SWARM_MCP_SERVER_VERSION
//	SWARM_MCP_DEBUG
//
// The returned Config has already been validated.
func FromEnv() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := &Config{
		GatewayURL:         v.GetString("gateway_url"),
		DefaultStampAmount: v.GetUint64("default_stamp_amount"),
		DefaultStampDepth:  v.GetInt("default_stamp_depth"),
		ServerName:         v.GetString("server_name"),
		ServerVersion:      v.GetString("server_version"),
		Debug:              v.GetBool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
