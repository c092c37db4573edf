package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultDialTimeout is the default timeout for establishing connections.
	DefaultDialTimeout = 5 * time.Second
	// DefaultRequestTimeout is the default timeout for a single RPC call.
	DefaultRequestTimeout = 10 * time.Second
)

// RPC is the node RPC connection configuration.
type RPC struct {
	// Endpoint is the node RPC URL.
	Endpoint string `yaml:"Endpoint"`
	// DialTimeout is the maximum time to establish a connection.
	DialTimeout time.Duration `yaml:"DialTimeout"`
	// RequestTimeout is the maximum duration of a single call.
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
	// RequestsPerSecond limits the client request rate, 0 means no limit.
	RequestsPerSecond float64 `yaml:"RequestsPerSecond"`
	// Burst is the maximum number of requests exceeding RequestsPerSecond.
	Burst int `yaml:"Burst"`
}

// Validate checks RPC for internal consistency. It returns an error if the
// configuration is invalid.
func (cfg *RPC) Validate() error {
	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return fmt.Errorf("bad Endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("unsupported Endpoint scheme %q", u.Scheme)
		}
	}
	if cfg.DialTimeout < 0 || cfg.RequestTimeout < 0 {
		return errors.New("negative timeout")
	}
	if cfg.RequestsPerSecond < 0 || cfg.Burst < 0 {
		return errors.New("negative rate limit")
	}
	return nil
}
