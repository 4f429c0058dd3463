package ratelimit

import (
	"net/http"
	"time"
)

// EndpointConfig is the limit applied to one method and path. A Path ending
// in "/" matches every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	// Limit is the number of requests per Window. Zero means unlimited.
	Limit  int
	Window time.Duration
	// Burst defaults to Limit.
	Burst int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig

	// IdleTTL is how long an unused client limiter is kept. Defaults to 1h.
	IdleTTL time.Duration
}

// DefaultEndpointConfigs returns the per-route limits. AI suggestions are the
// only route with an external cost; scoring is cheap and stays generous.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/suggest-improvements", Method: http.MethodPost, Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/analyze", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/suggestions", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/analyses/", Method: http.MethodGet, Limit: 300, Window: time.Minute, Burst: 50},
	}
}

// IPSet builds a lookup set from a list, skipping empty entries.
func IPSet(list []string) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, ip := range list {
		if ip != "" {
			out[ip] = true
		}
	}
	return out
}
