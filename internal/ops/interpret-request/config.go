package interpretrequest

// Config holds configuration specific to the interpret-request operation
type Config struct {
	// MaxTextLength caps the length of the free-form request text.
	MaxTextLength int
}

// LoadConfig loads configuration for the interpret-request operation
func LoadConfig() *Config {
	return &Config{
		MaxTextLength: 500,
	}
}
