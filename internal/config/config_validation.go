package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Server.Address) == "" || cfg.Server.DialTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Server.Transport {
	case TransportTCP, TransportWebSocket:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTransport, cfg.Server.Transport)
	}

	if strings.TrimSpace(cfg.User.Name) == "" {
		return ErrInvalidUserConfigs
	}

	return nil
}
