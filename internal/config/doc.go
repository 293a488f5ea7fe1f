// Package config provides loading and environment overlay for the client
// configuration. It exposes a Default() baseline, JSON file loading, and a
// PUBSUB_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("pubsub.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
