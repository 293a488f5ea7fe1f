package client

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/gonzalojpv/pubsub-api-client/internal/config"
	"github.com/gonzalojpv/pubsub-api-client/internal/metrics"
	"github.com/gonzalojpv/pubsub-api-client/internal/transport"
	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
	"github.com/gonzalojpv/pubsub-api-client/pkg/pubsub"
)

// session bundles a connected client with its resolved configuration.
type session struct {
	client *pubsub.Client
	cfg    config.Config
	logger logpkg.Logger
}

// resolveConfig builds the effective configuration: file, env overlay, then
// flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)
	if v, _ := cmd.Flags().GetString("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if cmd.Flags().Changed("insecure") {
		cfg.Insecure, _ = cmd.Flags().GetBool("insecure")
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.AuthToken = v
	}
	if v, _ := cmd.Flags().GetString("tenant"); v != "" {
		cfg.TenantID = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := cmd.Flags().GetString("metrics"); v != "" {
		cfg.MetricsAddr = v
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) logpkg.Logger {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
}

// newSession resolves configuration, dials the bus, and connects.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	var oauth *transport.OAuthConfig
	if cfg.OAuth.TokenURL != "" {
		oauth = &transport.OAuthConfig{
			TokenURL:     cfg.OAuth.TokenURL,
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			Scopes:       cfg.OAuth.Scopes,
		}
	}
	tr, err := transport.New(transport.Options{
		Endpoint:  cfg.Endpoint,
		Insecure:  cfg.Insecure,
		AuthToken: cfg.AuthToken,
		TenantID:  cfg.TenantID,
		OAuth:     oauth,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	c := pubsub.New(tr, pubsub.WithLogger(logger))
	if err := c.Connect(cmd.Context()); err != nil {
		return nil, err
	}

	s := &session{client: c, cfg: cfg, logger: logger}
	s.maybeServeMetrics()
	return s, nil
}

func (s *session) close() {
	if err := s.client.Disconnect(); err != nil {
		s.logger.Warn("disconnect failed", logpkg.Err(err))
	}
}

// maybeServeMetrics starts the Prometheus listener when configured.
func (s *session) maybeServeMetrics() {
	if s.cfg.MetricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	go func() {
		if err := http.ListenAndServe(s.cfg.MetricsAddr, mux); err != nil {
			s.logger.Warn("metrics listener failed", logpkg.Str("addr", s.cfg.MetricsAddr), logpkg.Err(err))
		}
	}()
	s.logger.Info("serving metrics", logpkg.Str("addr", s.cfg.MetricsAddr))
}
