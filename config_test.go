package tinyregex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"max literals lower bound", func(c *Config) { c.MaxLiterals = 1 }, ""},
		{"max literals upper bound", func(c *Config) { c.MaxLiterals = 1_000 }, ""},
		{"max literals zero", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"max literals too large", func(c *Config) { c.MaxLiterals = 1_001 }, "MaxLiterals"},
		{"prefilter disabled ignores limit", func(c *Config) {
			c.EnablePrefilter = false
			c.MaxLiterals = 0
		}, ""},
		{"nil logger", func(c *Config) { c.Logger = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.wantErr, ce.Field)
			assert.Contains(t, ce.Error(), "invalid config")
		})
	}
}

func TestCompileWithConfig_Invalid(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = -1
	re, err := CompileWithConfig("abc", config)
	assert.Nil(t, re)
	var ce *ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestCompileWithConfig_NilLogger(t *testing.T) {
	config := DefaultConfig()
	config.Logger = nil
	re, err := CompileWithConfig("abc", config)
	require.NoError(t, err)
	assert.True(t, re.Matches("abc"))
}
