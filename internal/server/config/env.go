package config

import "github.com/caarlos0/env/v6"

// parseEnv overlays USERDB_* environment variables. Unset variables leave the
// current value untouched; malformed values panic.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
