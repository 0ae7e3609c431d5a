package tinyregex

import (
	"go.uber.org/zap"
)

// Config controls how a pattern is compiled.
//
// Example:
//
//	config := tinyregex.DefaultConfig()
//	config.EnablePrefilter = false // Always run the NFA
//	re, err := tinyregex.CompileWithConfig("(start|end)", config)
type Config struct {
	// EnablePrefilter builds an Aho-Corasick prefilter for patterns that
	// match a finite set of literal strings.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of literals extracted for the prefilter.
	// Patterns with more alternatives run without one.
	// Default: 64
	MaxLiterals int

	// Logger receives a debug entry per compilation.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MaxLiterals:     64,
		Logger:          zap.NewNop(),
	}
}

// Validate checks the configuration and returns a *ConfigError for the
// first invalid field.
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "tinyregex: invalid config: " + e.Field + ": " + e.Message
}
