package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type clientJSONConfig struct {
	Server struct {
		Address     string   `json:"address"`
		Transport   string   `json:"transport"`
		DialTimeout Duration `json:"dial_timeout"`
	} `json:"server,omitempty"`

	User struct {
		Name string `json:"name"`
	} `json:"user,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg clientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &ClientConfig{
		Server: Server{
			Address:     jsonCfg.Server.Address,
			Transport:   jsonCfg.Server.Transport,
			DialTimeout: time.Duration(jsonCfg.Server.DialTimeout),
		},
		User: User{Name: jsonCfg.User.Name},
		Log:  Log{Level: jsonCfg.Log.Level},
	}, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h" or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
