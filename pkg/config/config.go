package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for pattern-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables; environment variables always override YAML values. Secrets
// (the AI API key) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// External AI service used for category pattern synthesis (optional)
	AI AIConfig `yaml:"ai"`

	// Pattern synonym library settings
	Patterns PatternsConfig `yaml:"patterns"`
}

// AIConfig holds the external pattern generator configuration. The engine
// works fully without it; when unset, synthesis uses the synonym library
// and heuristics only.
type AIConfig struct {
	// Provider selects the client: "openai", "anthropic", or empty to
	// disable the external call entirely.
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:""`

	// Endpoint is the base URL for OpenAI-compatible providers.
	Endpoint string `yaml:"endpoint" env:"AI_ENDPOINT" env-default:"https://api.openai.com/v1"`

	// Model is the model name, e.g. "gpt-4o-mini".
	Model string `yaml:"model" env:"AI_MODEL" env-default:""`

	// APIKey is secret and must come from the environment.
	APIKey string `yaml:"-" env:"AI_API_KEY"`

	// TimeoutMS bounds each external call; on expiry synthesis proceeds
	// immediately to the local fallback.
	TimeoutMS int `yaml:"timeout_ms" env:"AI_TIMEOUT_MS" env-default:"5000"`
}

// IsAvailable returns true if an external AI provider is configured.
func (c *AIConfig) IsAvailable() bool {
	return c.Provider != "" && c.Model != ""
}

// Timeout returns the external call timeout as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// PatternsConfig holds synonym library settings.
type PatternsConfig struct {
	// OverridesPath optionally points to a YAML file of category ->
	// pattern pairs merged over the built-in library at startup.
	OverridesPath string `yaml:"overrides_path" env:"PATTERN_OVERRIDES_PATH" env-default:""`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists the environment alone is used. The
// version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "", "openai", "anthropic":
	default:
		return fmt.Errorf("unknown ai provider %q (expected openai or anthropic)", c.AI.Provider)
	}
	if c.AI.TimeoutMS <= 0 {
		return fmt.Errorf("ai timeout_ms must be positive, got %d", c.AI.TimeoutMS)
	}
	return nil
}
