package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Endpoint != "localhost:7011" {
		t.Fatalf("default endpoint")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default logging")
	}
	if cfg.Insecure {
		t.Fatalf("default insecure should be false")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pubsub.json")
	data := []byte(`{"endpoint":"bus.example.com:7443","tenantId":"org-1","oauth":{"tokenUrl":"https://login.example.com/token","clientId":"cid","clientSecret":"cs"}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "bus.example.com:7443" {
		t.Fatalf("endpoint: %q", cfg.Endpoint)
	}
	if cfg.TenantID != "org-1" {
		t.Fatalf("tenant: %q", cfg.TenantID)
	}
	if cfg.OAuth.ClientID != "cid" {
		t.Fatalf("oauth client id: %q", cfg.OAuth.ClientID)
	}
	// fields absent from the file keep their defaults
	if cfg.LogLevel != "info" {
		t.Fatalf("log level default lost: %q", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/pubsub.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should return defaults: %v", err)
	}
	if cfg.Endpoint != Default().Endpoint {
		t.Fatalf("defaults not returned")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("PUBSUB_ENDPOINT", "bus.example.com:7443")
	os.Setenv("PUBSUB_INSECURE", "true")
	os.Setenv("PUBSUB_AUTH_TOKEN", "tok-env")
	os.Setenv("PUBSUB_OAUTH_SCOPES", "read, write,")
	t.Cleanup(func() {
		os.Unsetenv("PUBSUB_ENDPOINT")
		os.Unsetenv("PUBSUB_INSECURE")
		os.Unsetenv("PUBSUB_AUTH_TOKEN")
		os.Unsetenv("PUBSUB_OAUTH_SCOPES")
	})
	FromEnv(&cfg)
	if cfg.Endpoint != "bus.example.com:7443" {
		t.Fatalf("env override endpoint")
	}
	if !cfg.Insecure {
		t.Fatalf("env override insecure")
	}
	if cfg.AuthToken != "tok-env" {
		t.Fatalf("env override token")
	}
	if len(cfg.OAuth.Scopes) != 2 || cfg.OAuth.Scopes[1] != "write" {
		t.Fatalf("env override scopes: %v", cfg.OAuth.Scopes)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	cfg.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
	cfg = Default()
	cfg.OAuth.TokenURL = "https://login.example.com/token"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for oauth without client id")
	}
}
