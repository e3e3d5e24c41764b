// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. Values come from the environment with
// the PROMPT_SYSTEM_ prefix; the server entrypoint loads a .env file first
// when one exists.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":3001"`
	PromptsDir    string `env:"PROMPTS_DIR" envDefault:"prompts"`
	WebDir        string `env:"WEB_DIR" envDefault:"public"`
	MaxBodyBytes  int64  `env:"MAX_BODY_BYTES" envDefault:"10485760"`

	// Completion provider settings. BaseURL targets any OpenAI-compatible
	// endpoint; the defaults point at Groq, matching the reference
	// deployment.
	ProviderBaseURL string        `env:"PROVIDER_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	ProviderAPIKey  string        `env:"PROVIDER_API_KEY"`
	DefaultModel    string        `env:"DEFAULT_MODEL" envDefault:"llama-3.3-70b-versatile"`
	Temperature     float64       `env:"TEMPERATURE" envDefault:"0.7"`
	MaxTokens       int           `env:"MAX_TOKENS" envDefault:"4096"`
	GatewayTimeout  time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"60s"`
}

// NewConfig reads configuration from the environment, applying defaults for
// anything unset.
func NewConfig() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "PROMPT_SYSTEM_"})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Validate performs runtime validations on the loaded configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.PromptsDir == "" {
		return fmt.Errorf("prompts directory must be specified")
	}
	if cfg.DefaultModel == "" {
		return fmt.Errorf("default model must be specified")
	}
	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive (got %d)", cfg.MaxTokens)
	}
	if cfg.GatewayTimeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive (got %s)", cfg.GatewayTimeout)
	}
	return nil
}
