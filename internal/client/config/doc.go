// Package config loads runtime configuration for the Drop Logistics CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the tracking server
//	-i int      online status check interval (seconds)
//	-d string   local database path
//	-s string   session token secret
//	-t int      session lifetime (hours)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_dsn": "droplogistics.db",
//	  "secret_key": "secretKey",
//	  "session_ttl": "720h",
//	  "log_level": "warn"
//	}
package config
