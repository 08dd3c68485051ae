package config

import "time"

// Config holds runtime settings for the Drop Logistics CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the tracking server.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - DatabaseDSN: path of the local SQLite database.
//   - SecretKey: key signing session tokens; must match the server.
//   - SessionTTL: lifetime of a session token.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabaseDSN         string
	SecretKey           string
	SessionTTL          time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseDSN = "droplogistics.db"
	c.SecretKey = "secretKey"
	c.SessionTTL = 720 * time.Hour
	c.LogLevel = "warn"
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
