package decoder

import "time"

// Config is a configuration for the decoder application
type Config struct {
	HTTPAddr string
	// VPICBaseURL is the base URL of the vPIC-compatible extended-info
	// service.
	VPICBaseURL string
	// VPICTimeout bounds a single extended-info request.
	VPICTimeout time.Duration
	// ExtendedEnabled gates all extended-info lookups; when false the
	// extended endpoint reports not found without calling out.
	ExtendedEnabled bool
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:        "localhost:9090",
		VPICBaseURL:     "https://vpic.nhtsa.dot.gov/api",
		VPICTimeout:     10 * time.Second,
		ExtendedEnabled: true,
	}
}
