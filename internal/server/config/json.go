package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdb/internal/flagx"
	"github.com/dmitrijs2005/userdb/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration, so
// both "5m" and integer nanoseconds are accepted. Pointer fields distinguish
// an explicit false/zero from an absent key.
type JsonConfig struct {
	DatabaseDSN     string          `json:"database_dsn"`
	MaxOpenConns    *int            `json:"max_open_conns"`
	MaxIdleConns    *int            `json:"max_idle_conns"`
	ConnMaxLifetime *timex.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime *timex.Duration `json:"conn_max_idle_time"`
	PingTimeout     *timex.Duration `json:"ping_timeout"`
	MigrateOnStart  *bool           `json:"migrate_on_start"`
	LogLevel        string          `json:"log_level"`
	LogFormat       string          `json:"log_format"`
}

// parseJson overlays values from the JSON file named by the -c or -config
// flag. Keys missing from the file leave the current value untouched.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
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

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MaxOpenConns != nil {
		config.MaxOpenConns = *c.MaxOpenConns
	}
	if c.MaxIdleConns != nil {
		config.MaxIdleConns = *c.MaxIdleConns
	}
	if c.ConnMaxLifetime != nil {
		config.ConnMaxLifetime = c.ConnMaxLifetime.Duration
	}
	if c.ConnMaxIdleTime != nil {
		config.ConnMaxIdleTime = c.ConnMaxIdleTime.Duration
	}
	if c.PingTimeout != nil {
		config.PingTimeout = c.PingTimeout.Duration
	}
	if c.MigrateOnStart != nil {
		config.MigrateOnStart = *c.MigrateOnStart
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
