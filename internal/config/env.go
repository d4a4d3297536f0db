package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every variable name.
const envPrefix = "CHAT_"

// parseEnv populates cfg from CHAT_* environment variables using the
// `env` and `envPrefix` tags on [ClientConfig].
func parseEnv(cfg *ClientConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
