package config

import (
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a, --address      server address
//	-t, --transport    tcp or ws
//	-u, --user         user name
//	    --log-level    zerolog level
//	    --dial-timeout connection timeout (e.g. 3s)
//	-c, --config       JSON config file path
func parseFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("chat-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address     string
		transport   string
		user        string
		logLevel    string
		dialTimeout time.Duration
		jsonPath    string
	)

	// ── connection ───────────────────────────────────────────────────────
	fs.StringVarP(&address, "address", "a", "", "Chat server address")
	fs.StringVarP(&transport, "transport", "t", "", "Transport: tcp or ws")
	fs.DurationVar(&dialTimeout, "dial-timeout", 0, "Dial timeout (e.g. 3s)")

	// ── identity ─────────────────────────────────────────────────────────
	fs.StringVarP(&user, "user", "u", "", "User name")

	// ── misc ─────────────────────────────────────────────────────────────
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVarP(&jsonPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		Server: Server{
			Address:     address,
			Transport:   transport,
			DialTimeout: dialTimeout,
		},
		User:         User{Name: user},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonPath,
	}, nil
}
