// Package providers implements the model-invocation collaborator: adapters
// over the generative-text SDKs plus the registry that routes requests to
// them. The pipeline treats everything here as opaque: it supplies a
// (systemPrompt, userPrompt) pair and gets text or an error back; retry
// control lives with the caller, never inside an adapter.
package providers

import "context"

// InvocationRequest is one generation request.
type InvocationRequest struct {
	SystemPrompt string   `json:"system_prompt"`
	UserPrompt   string   `json:"user_prompt"`
	Model        string   `json:"model,omitempty"`
	MaxTokens    int      `json:"max_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
}

// InvocationResponse is the text result of a generation request.
type InvocationResponse struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// Usage reports token accounting for one invocation.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Invoker is a single provider adapter.
type Invoker interface {
	Name() string
	Invoke(ctx context.Context, req *InvocationRequest) (*InvocationResponse, error)
	ValidateConfig() error
	DefaultModel() string
}

// ProviderType identifies the provider behind an adapter.
type ProviderType string

const (
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeGoogle    ProviderType = "google"
)
