package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────

func TestBuild_DefaultsNeedUser(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidUserConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_Priority(t *testing.T) {
	b := newConfigBuilder()
	b.json = &ClientConfig{
		Server: Server{Address: "json:1", Transport: "ws"},
		User:   User{Name: "json-user"},
		Log:    Log{Level: "error"},
	}
	b.env = &ClientConfig{
		Server: Server{Address: "env:1"},
		User:   User{Name: "env-user"},
	}
	b.flags = &ClientConfig{
		User: User{Name: "flag-user"},
	}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "env:1", cfg.Server.Address)
	assert.Equal(t, "ws", cfg.Server.Transport)
	assert.Equal(t, DefaultDialTimeout, cfg.Server.DialTimeout)
	assert.Equal(t, "flag-user", cfg.User.Name)
	assert.Equal(t, "error", cfg.Log.Level)
}

// ── validate ──────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *ClientConfig {
		cfg := defaults()
		cfg.User.Name = "alice"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(cfg *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "blank address", mutate: func(cfg *ClientConfig) { cfg.Server.Address = "  " }, want: ErrInvalidServerConfigs},
		{name: "no dial timeout", mutate: func(cfg *ClientConfig) { cfg.Server.DialTimeout = 0 }, want: ErrInvalidServerConfigs},
		{name: "unknown transport", mutate: func(cfg *ClientConfig) { cfg.Server.Transport = "udp" }, want: ErrInvalidTransport},
		{name: "blank user", mutate: func(cfg *ClientConfig) { cfg.User.Name = "" }, want: ErrInvalidUserConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Load ──────────────────────────────────────────────────────────────────

func TestLoad_AllSources(t *testing.T) {
	path := writeFile(t, `{"server": {"transport": "ws", "dial_timeout": "7s"}, "user": {"name": "json-user"}}`)
	t.Setenv("CHAT_CONFIG", path)
	t.Setenv("CHAT_SERVER_ADDRESS", "env-host:9000")
	t.Setenv("CHAT_USER_NAME", "env-user")

	cfg, err := Load([]string{"--user", "flag-user", "--log-level", "debug"})

	require.NoError(t, err)
	assert.Equal(t, "env-host:9000", cfg.Server.Address)
	assert.Equal(t, TransportWebSocket, cfg.Server.Transport)
	assert.Equal(t, 7*time.Second, cfg.Server.DialTimeout)
	assert.Equal(t, "flag-user", cfg.User.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"-u", "alice"})

	require.NoError(t, err)
	assert.Equal(t, DefaultAddress, cfg.Server.Address)
	assert.Equal(t, DefaultTransport, cfg.Server.Transport)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_MissingJSONFile(t *testing.T) {
	_, err := Load([]string{"-u", "alice", "-c", "/definitely/not/here.json"})
	assert.Error(t, err)
}
