// Package config handles configuration for the tracking server,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the Drop Logistics tracking server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store
//     seeded with the demo shipments.
//   - SecretKey: HMAC secret for verifying session JWTs (HS256). Must match
//     the client. Do not use test defaults in prod.
//   - MetricsAddr: bind address of the Prometheus /metrics endpoint; empty
//     disables it.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	SecretKey        string
	MetricsAddr      string
	LogLevel         string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.MetricsAddr = ":9090"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
