package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxValidUntilBlockIncrement is the default upper increment size of
	// the chain height (in blocks) a transaction can be valid for. It's the
	// estimated daily number of blocks with 15s interval.
	DefaultMaxValidUntilBlockIncrement = 86400000 / 15000
	// DefaultAddressVersion is the address version byte of Neo N3 networks.
	DefaultAddressVersion = 0x35
	// DefaultConfigPath is the default path to the config directory.
	DefaultConfigPath = "./config"
)

// Version is the version of the tool, set at build time.
var Version = "0.1.0"

// Config is the top-level structure representing the configuration of the
// client.
type Config struct {
	ProtocolConfiguration    ProtocolConfiguration    `yaml:"ProtocolConfiguration"`
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// Default returns the default configuration for the given network.
func Default(netMode netmode.Magic) Config {
	config := Config{
		ProtocolConfiguration: ProtocolConfiguration{Magic: netMode},
		ApplicationConfiguration: ApplicationConfiguration{
			RPC: RPC{
				DialTimeout:    DefaultDialTimeout,
				RequestTimeout: DefaultRequestTimeout,
			},
		},
	}
	config.ProtocolConfiguration.setDefaults()
	return config
}

// Load attempts to load the config from the given
// path for the given netMode.
func Load(path string, netMode netmode.Magic) (Config, error) {
	configPath := filepath.Join(path, fmt.Sprintf("protocol.%s.yml", netMode))
	return LoadFile(configPath)
}

// LoadFile loads config from the provided path. Unset values are filled in
// with defaults.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return Decode(configData)
}

// Decode parses YAML configuration from the given data applying defaults
// and checking the result.
func Decode(configData []byte) (Config, error) {
	config := Default(0)

	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err := decoder.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	config.ProtocolConfiguration.setDefaults()
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.ProtocolConfiguration.Magic == 0 {
		return errors.New("network magic is not set")
	}
	err := c.ApplicationConfiguration.Validate()
	if err != nil {
		return fmt.Errorf("invalid ApplicationConfiguration: %w", err)
	}
	return nil
}
