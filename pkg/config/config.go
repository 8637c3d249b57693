// Package config defines the runtime configuration for the SDK: the
// authentication token, HTTP client behavior, debug mode, and operation
// timeouts. It also provides validation and defaulting helpers.
package config

import (
	"errors"
	"time"
)

// Config holds all SDK settings required to talk to the Web API.
// Use Validate to check for required fields.
type Config struct {
	// Token is the OAuth token sent as the first parameter of every
	// authenticated call (required). Bot tokens start with "xoxb-",
	// user tokens with "xoxp-".
	Token string `json:"token" yaml:"token"`
	// UserAgent overrides the User-Agent header on outgoing requests.
	// Empty means the transport's own default.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation deadlines. See Timeouts.WithDefaults
	// for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Validate verifies that the required fields are provided. Returns an error
// when Token is empty.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("authentication token is required")
	}

	return nil
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Connect time.Duration // TCP connect to the API host
	Request time.Duration // one whole call, body read included
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Connect: 5s
//	Request: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Connect == 0 {
		tt.Connect = 5 * time.Second
	}
	if tt.Request == 0 {
		tt.Request = 30 * time.Second
	}
	return tt
}
