package qualtrics

import (
	"fmt"
	"os"
)

// Config holds Qualtrics API settings. Endpoint overrides the derived
// base URL in tests.
type Config struct {
	Token      string
	DataCenter string
	Org        string
	Endpoint   string
}

// DefaultConfig returns a Config with the fixed data-center and
// organization prefixes used for URL templates.
func DefaultConfig() Config {
	return Config{
		DataCenter: "co1",
		Org:        "upenn",
	}
}

// LoadConfig reads Qualtrics settings from environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("QUALTRICS_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("QUALTRICS_DATA_CENTER"); v != "" {
		cfg.DataCenter = v
	}
	if v := os.Getenv("QUALTRICS_ORG"); v != "" {
		cfg.Org = v
	}
	if v := os.Getenv("QUALTRICS_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	return cfg
}

// BaseURL is the API root for the configured data center.
func (c Config) BaseURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.qualtrics.com/API/v3", c.DataCenter)
}
