// internal/ops/convert-units/config.go
package convertunits

import "time"

// The conversion path is pure and needs no tunables, but the struct is
// provided for consistency with the other operations.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
