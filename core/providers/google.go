package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleInvoker implements Invoker for Google's Gemini models.
type GoogleInvoker struct {
	client *genai.Client
	config GoogleConfig
}

// NewGoogleInvoker creates a new Google adapter with the given
// configuration.
func NewGoogleInvoker(ctx context.Context, config GoogleConfig) (*GoogleInvoker, error) {
	if config.Model == "" {
		config.Model = DefaultGoogleConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultGoogleConfig().MaxTokens
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("google client: %w", err)
	}

	return &GoogleInvoker{
		client: client,
		config: config,
	}, nil
}

// Name returns the provider identifier.
func (p *GoogleInvoker) Name() string {
	return string(ProviderTypeGoogle)
}

// Invoke performs a non-streaming generation request.
func (p *GoogleInvoker) Invoke(ctx context.Context, req *InvocationRequest) (*InvocationResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.UserPrompt), p.buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("google invoke: %w", err)
	}

	usage := Usage{}
	if resp.UsageMetadata != nil {
		usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return &InvocationResponse{
		Content: resp.Text(),
		Model:   model,
		Usage:   usage,
	}, nil
}

// ValidateConfig checks if the provider configuration is valid.
func (p *GoogleInvoker) ValidateConfig() error {
	return p.config.Validate()
}

// DefaultModel returns the provider's default model.
func (p *GoogleInvoker) DefaultModel() string {
	return p.config.Model
}

func (p *GoogleInvoker) buildConfig(req *InvocationRequest) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	} else if p.config.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(p.config.Temperature))
	}

	return cfg
}
