package providers

import (
	"fmt"
	"time"
)

// BaseConfig contains configuration common to all providers.
type BaseConfig struct {
	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key" yaml:"api_key"`

	// Model is the default model to use.
	Model string `json:"model" yaml:"model"`

	// MaxTokens is the default maximum tokens to generate.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the default sampling temperature.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout for API requests.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultBaseConfig returns sensible defaults.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		MaxTokens:   8192,
		Temperature: 0.3,
		Timeout:     5 * time.Minute,
	}
}

// Validate checks the base configuration.
func (c *BaseConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	return nil
}

// AnthropicConfig contains Anthropic-specific configuration.
type AnthropicConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// DefaultAnthropicConfig returns the default Anthropic configuration.
func DefaultAnthropicConfig() AnthropicConfig {
	cfg := AnthropicConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "claude-sonnet-4-5-20250901"
	return cfg
}

// OpenAIConfig contains OpenAI-specific configuration.
type OpenAIConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Organization is the optional OpenAI organization header.
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// DefaultOpenAIConfig returns the default OpenAI configuration.
func DefaultOpenAIConfig() OpenAIConfig {
	cfg := OpenAIConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "gpt-5.2"
	return cfg
}

// GoogleConfig contains Google-specific configuration.
type GoogleConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`
}

// DefaultGoogleConfig returns the default Google configuration.
func DefaultGoogleConfig() GoogleConfig {
	cfg := GoogleConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "gemini-2.5-pro"
	return cfg
}
