package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a console logger writing to stderr or to the configured
// file. The level is taken from the configuration unless debug is set. The
// returned level can be changed at runtime.
func NewLogger(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, zap.AtomicLevel, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		var err error
		if level, err = zapcore.ParseLevel(cfg.LogLevel); err != nil {
			return nil, zap.AtomicLevel{}, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
			return nil, zap.AtomicLevel{}, fmt.Errorf("could not create dir for logger: %w", err)
		}
		zc.OutputPaths = []string{cfg.LogPath}
	}
	log, err := zc.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	return log, zc.Level, nil
}
