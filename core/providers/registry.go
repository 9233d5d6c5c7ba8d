package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/veltaire/planforge/core/errors"
)

// Registry manages provider adapters and routes invocation requests to
// them.
type Registry struct {
	mu sync.RWMutex

	invokers map[ProviderType]Invoker
	default_ ProviderType
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		invokers: make(map[ProviderType]Invoker),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(providerType ProviderType, invoker Invoker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := invoker.ValidateConfig(); err != nil {
		return fmt.Errorf("invalid provider config for %s: %w", providerType, err)
	}

	r.invokers[providerType] = invoker

	// Set as default if first provider
	if len(r.invokers) == 1 {
		r.default_ = providerType
	}

	return nil
}

// RegisterAnthropic creates and registers an Anthropic adapter.
func (r *Registry) RegisterAnthropic(config AnthropicConfig) error {
	invoker, err := NewAnthropicInvoker(config)
	if err != nil {
		return err
	}
	return r.Register(ProviderTypeAnthropic, invoker)
}

// RegisterOpenAI creates and registers an OpenAI adapter.
func (r *Registry) RegisterOpenAI(config OpenAIConfig) error {
	invoker, err := NewOpenAIInvoker(config)
	if err != nil {
		return err
	}
	return r.Register(ProviderTypeOpenAI, invoker)
}

// RegisterGoogle creates and registers a Google adapter.
func (r *Registry) RegisterGoogle(ctx context.Context, config GoogleConfig) error {
	invoker, err := NewGoogleInvoker(ctx, config)
	if err != nil {
		return err
	}
	return r.Register(ProviderTypeGoogle, invoker)
}

// Resolve returns the adapter for the preferred provider hint, or the
// default adapter when the hint is empty. A registry with no usable route
// yields a configuration error.
func (r *Registry) Resolve(preferred string) (Invoker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.invokers) == 0 {
		return nil, errors.NewConfiguration("no model providers registered", nil)
	}

	if preferred != "" {
		if invoker, ok := r.invokers[ProviderType(preferred)]; ok {
			return invoker, nil
		}
		return nil, errors.NewConfiguration(
			fmt.Sprintf("preferred provider %q is not registered", preferred), nil)
	}

	return r.invokers[r.default_], nil
}

// SetDefault changes the default provider.
func (r *Registry) SetDefault(providerType ProviderType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invokers[providerType]; !ok {
		return fmt.Errorf("provider not registered: %s", providerType)
	}
	r.default_ = providerType
	return nil
}

// Registered lists the registered provider types.
func (r *Registry) Registered() []ProviderType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]ProviderType, 0, len(r.invokers))
	for t := range r.invokers {
		types = append(types, t)
	}
	return types
}
