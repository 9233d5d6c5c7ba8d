package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIInvoker implements Invoker for OpenAI's GPT models.
type OpenAIInvoker struct {
	client *openai.Client
	config OpenAIConfig
}

// NewOpenAIInvoker creates a new OpenAI adapter with the given
// configuration.
func NewOpenAIInvoker(config OpenAIConfig) (*OpenAIInvoker, error) {
	if config.Model == "" {
		config.Model = DefaultOpenAIConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultOpenAIConfig().MaxTokens
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Organization != "" {
		opts = append(opts, option.WithHeader("OpenAI-Organization", config.Organization))
	}

	client := openai.NewClient(opts...)

	return &OpenAIInvoker{
		client: &client,
		config: config,
	}, nil
}

// Name returns the provider identifier.
func (p *OpenAIInvoker) Name() string {
	return string(ProviderTypeOpenAI)
}

// Invoke performs a non-streaming generation request.
func (p *OpenAIInvoker) Invoke(ctx context.Context, req *InvocationRequest) (*InvocationResponse, error) {
	params := p.buildParams(req)

	result, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai invoke: %w", err)
	}

	return &InvocationResponse{
		Content: result.OutputText(),
		Model:   string(result.Model),
		Usage: Usage{
			InputTokens:  int(result.Usage.InputTokens),
			OutputTokens: int(result.Usage.OutputTokens),
			TotalTokens:  int(result.Usage.TotalTokens),
		},
	}, nil
}

// ValidateConfig checks if the provider configuration is valid.
func (p *OpenAIInvoker) ValidateConfig() error {
	return p.config.Validate()
}

// DefaultModel returns the provider's default model.
func (p *OpenAIInvoker) DefaultModel() string {
	return p.config.Model
}

func (p *OpenAIInvoker) buildParams(req *InvocationRequest) responses.ResponseNewParams {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	input := make(responses.ResponseInputParam, 0, 2)
	if req.SystemPrompt != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(req.SystemPrompt, responses.EasyInputMessageRoleSystem))
	}
	input = append(input, responses.ResponseInputItemParamOfMessage(req.UserPrompt, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: input,
		},
		MaxOutputTokens: openai.Int(int64(maxTokens)),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	} else if p.config.Temperature > 0 {
		params.Temperature = openai.Float(p.config.Temperature)
	}

	return params
}
