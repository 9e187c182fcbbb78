// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// GitHubToken authenticates GraphQL requests. It is optional: without
	// one, requests run unauthenticated against the public rate limits.
	GitHubToken string
	LogLevel    string
}

// Load reads configuration from an optional .env file in the working
// directory and from the environment. A missing .env file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c := &Config{
		GitHubToken: v.GetString("GITHUB_TOKEN"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c, nil
}
