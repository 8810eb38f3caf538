package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Tokenizer strategies
const (
	TokenizerWhitespace = "whitespace"
	TokenizerPattern    = "pattern"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the postguard configuration
type Config struct {
	Keywords  KeywordsConfig  `yaml:"keywords" mapstructure:"keywords"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" mapstructure:"tokenizer"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// KeywordsConfig lists the words that flag a post. Matching is case-insensitive.
type KeywordsConfig struct {
	Hate      []string `yaml:"hate" mapstructure:"hate" validate:"dive,required"`
	Offensive []string `yaml:"offensive" mapstructure:"offensive" validate:"dive,required"`
}

// TokenizerConfig selects how normalized posts are split into tokens
type TokenizerConfig struct {
	Strategy string `yaml:"strategy" mapstructure:"strategy" validate:"oneof=whitespace pattern"`
}

// CacheConfig controls the per-post analysis cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl" validate:"gt=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval" validate:"gte=0"` // 0 disables the janitor
}

// OutputConfig controls how the CLI prints analyses
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=json text"`
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Keywords: KeywordsConfig{
			Hate:      []string{"slur1", "slur2"},
			Offensive: []string{"stupid", "idiot"},
		},
		Tokenizer: TokenizerConfig{
			Strategy: TokenizerWhitespace,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 15 * time.Minute,
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Color:  true,
		},
	}
}

var validate = validator.New()

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
