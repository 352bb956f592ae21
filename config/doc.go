// Package config loads process settings for programs built on gomonad.
//
// Settings come from an optional YAML file, an optional .env file and
// environment variables prefixed with GOMONAD_, in increasing priority.
//
// # Usage
//
//	s, err := config.Load(config.WithConfigFile("config.yml"))
//	shutdown, err := config.Apply(ctx, s)
//	defer shutdown(ctx)
//
// Nested keys map to underscore-separated variables, so
// GOMONAD_LOGGING_LEVEL=debug sets logging.level.
package config
