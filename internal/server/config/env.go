package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays fields whose environment variable is set. Unset
// variables leave the current value alone. Malformed values panic, the same
// way bad JSON or flags do.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
