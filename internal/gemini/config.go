// internal/gemini/config.go
package gemini

import "time"

const (
	// DefaultModel is the completion model used unless configuration
	// overrides it.
	DefaultModel = "gemini-1.5-flash"

	// DefaultBaseURL is the provider's REST endpoint root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one completion round trip.
	DefaultTimeout = 30 * time.Second
)

// Config holds the provider settings. APIKey is required; the rest fall
// back to the defaults above.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}
