package config

import "time"

// Config holds runtime settings for the raclient CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - CredentialsDBPath: path of the local sqlite file holding the bearer token.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	CredentialsDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsDBPath = "raclient.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
