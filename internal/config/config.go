package config

import "time"

// Transport names accepted in Server.Transport.
const (
	TransportTCP       = "tcp"
	TransportWebSocket = "ws"
)

// Defaults applied to fields no source has set.
const (
	DefaultAddress     = "localhost:8080"
	DefaultTransport   = TransportTCP
	DefaultLogLevel    = "info"
	DefaultDialTimeout = 5 * time.Second
)

// ClientConfig is the top-level configuration of the chat client.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type ClientConfig struct {
	// Server holds the address of the chat server and how to reach it.
	Server Server `envPrefix:"SERVER_"`

	// User holds the identity the client logs in with.
	User User `envPrefix:"USER_"`

	// Log holds diagnostic output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CHAT_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Server describes the chat server endpoint.
type Server struct {
	// Address is host:port for tcp, or host:port / ws:// URL for ws.
	// Env: CHAT_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Transport is either "tcp" or "ws".
	// Env: CHAT_SERVER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// DialTimeout bounds connection establishment.
	// Env: CHAT_SERVER_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`
}

// User describes the chat identity.
type User struct {
	// Name is the user name sent with the login request.
	// Env: CHAT_USER_NAME
	Name string `env:"NAME"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: CHAT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaults() *ClientConfig {
	return &ClientConfig{
		Server: Server{
			Address:     DefaultAddress,
			Transport:   DefaultTransport,
			DialTimeout: DefaultDialTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// Load builds and validates the client configuration from defaults, the
// optional JSON file, the environment and args (without the program name).
func Load(args []string) (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
