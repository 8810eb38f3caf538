package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"slur1", "slur2"}, cfg.Keywords.Hate)
	assert.Equal(t, []string{"stupid", "idiot"}, cfg.Keywords.Offensive)
	assert.Equal(t, TokenizerWhitespace, cfg.Tokenizer.Strategy)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown strategy", func(c *Config) { c.Tokenizer.Strategy = "bpe" }},
		{"blank keyword", func(c *Config) { c.Keywords.Offensive = append(c.Keywords.Offensive, "") }},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"negative cleanup", func(c *Config) { c.Cache.CleanupInterval = -time.Second }},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestConfig_ValidateAcceptsPatternAndEmptyLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tokenizer.Strategy = TokenizerPattern
	cfg.Keywords.Hate = nil
	cfg.Output.Format = FormatText

	assert.NoError(t, cfg.Validate())
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "ttl: 10m0s")
	assert.Contains(t, string(data), "strategy: whitespace")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), &cfg)
}
