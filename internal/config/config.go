package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config is the top-level client configuration loaded from file/env.
type Config struct {
	Endpoint    string      `json:"endpoint"`
	Insecure    bool        `json:"insecure"`
	AuthToken   string      `json:"authToken"`
	TenantID    string      `json:"tenantId"`
	OAuth       OAuthConfig `json:"oauth"`
	LogLevel    string      `json:"logLevel"`
	LogFormat   string      `json:"logFormat"`
	MetricsAddr string      `json:"metricsAddr"`
}

// OAuthConfig captures client-credentials settings. Empty TokenURL disables
// the flow.
type OAuthConfig struct {
	TokenURL     string   `json:"tokenUrl"`
	ClientID     string   `json:"clientId"`
	ClientSecret string   `json:"clientSecret"`
	Scopes       []string `json:"scopes"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Endpoint:  "localhost:7011",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate reports configuration the client cannot start with.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("config: endpoint is required")
	}
	if c.OAuth.TokenURL != "" && c.OAuth.ClientID == "" {
		return errors.New("config: oauth token url set without client id")
	}
	return nil
}
