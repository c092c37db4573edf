package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration contains client-side settings.
type ApplicationConfiguration struct {
	// LogLevel is the minimum level of messages logged, "info" by default.
	LogLevel string `yaml:"LogLevel"`
	// LogPath is the file to write logs to, stderr is used if empty.
	LogPath string `yaml:"LogPath"`
	// RPC contains the node connection settings.
	RPC RPC `yaml:"RPC"`
}

// Validate checks ApplicationConfiguration for internal consistency.
func (a *ApplicationConfiguration) Validate() error {
	if a.LogLevel != "" {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("invalid LogLevel: %w", err)
		}
	}
	err := a.RPC.Validate()
	if err != nil {
		return fmt.Errorf("invalid RPC configuration: %w", err)
	}
	return nil
}
