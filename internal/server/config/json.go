package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/droplogistics/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
//
// This struct is an intermediate DTO (Data Transfer Object) used only for
// reading JSON configuration files. Fields absent from the file are nil and
// keep the value already in Config.
type JsonConfig struct {
	EndpointAddrGRPC *string `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string `json:"database_dsn"`
	SecretKey        *string `json:"secret_key"`
	MetricsAddr      *string `json:"metrics_addr"`
	LogLevel         *string `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If it is not set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	for _, f := range []struct {
		src *string
		dst *string
	}{
		{c.EndpointAddrGRPC, &config.EndpointAddrGRPC},
		{c.DatabaseDSN, &config.DatabaseDSN},
		{c.SecretKey, &config.SecretKey},
		{c.MetricsAddr, &config.MetricsAddr},
		{c.LogLevel, &config.LogLevel},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}
