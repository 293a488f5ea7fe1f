package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays PUBSUB_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("PUBSUB_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PUBSUB_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Insecure = b
		}
	}
	if v := os.Getenv("PUBSUB_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = v
	}
	if v := os.Getenv("PUBSUB_TENANT_ID"); v != "" {
		cfg.TenantID = v
	}
	if v := os.Getenv("PUBSUB_OAUTH_TOKEN_URL"); v != "" {
		cfg.OAuth.TokenURL = v
	}
	if v := os.Getenv("PUBSUB_OAUTH_CLIENT_ID"); v != "" {
		cfg.OAuth.ClientID = v
	}
	if v := os.Getenv("PUBSUB_OAUTH_CLIENT_SECRET"); v != "" {
		cfg.OAuth.ClientSecret = v
	}
	if v := os.Getenv("PUBSUB_OAUTH_SCOPES"); v != "" {
		cfg.OAuth.Scopes = nil
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.OAuth.Scopes = append(cfg.OAuth.Scopes, p)
			}
		}
	}
	if v := os.Getenv("PUBSUB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PUBSUB_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PUBSUB_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}
