package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. Paths match on prefix
// when they end with "/", otherwise exactly.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity; defaults to Limit when 0
}

// Config holds the limiter configuration.
type Config struct {
	Enabled   bool
	Endpoints []EndpointConfig
}

// DefaultConfig returns the endpoint tiers for this API: outreach dispatch is
// the most expensive operation (provider fan-out), generation calls a paid
// model, search is comparatively cheap.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Endpoints: []EndpointConfig{
			{Path: "/api/send-outreach", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
			{Path: "/api/generate-email-template", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/api/generate-personalized-email", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/api/find-candidates", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

// LoadConfig builds the configuration from environment variables, falling
// back to DefaultConfig values. RATE_LIMIT_ENABLED=false disables limiting.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	return cfg
}

// match finds the endpoint configuration for a path and method, or nil when
// the endpoint is unlimited.
func (c *Config) match(path, method string) *EndpointConfig {
	for i := range c.Endpoints {
		ec := &c.Endpoints[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}
	return nil
}
