package config

import (
	"fmt"
	"torrenthash/internal/bencoding"

	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for torrenthash
type Config struct {
	// Scanning
	ScanMode bencoding.ScanMode

	// Output
	ExpectedHash string // Optional hex digest the input must match
	JSON         bool

	// Logging
	LogLevel string
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		ScanMode: bencoding.ScanStructural,
		LogLevel: "info",
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if _, err := bencoding.ParseScanMode(string(c.ScanMode)); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
