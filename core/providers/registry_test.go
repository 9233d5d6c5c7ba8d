package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/planforge/core/errors"
)

type stubInvoker struct {
	name        string
	validateErr error
}

func (s *stubInvoker) Name() string { return s.name }

func (s *stubInvoker) Invoke(ctx context.Context, req *InvocationRequest) (*InvocationResponse, error) {
	return &InvocationResponse{Content: "{}", Model: "stub-model"}, nil
}

func (s *stubInvoker) ValidateConfig() error { return s.validateErr }

func (s *stubInvoker) DefaultModel() string { return "stub-model" }

func TestRegistryResolveEmpty(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("")
	require.Error(t, err)
	assert.Equal(t, errors.ClassConfiguration, errors.GetClass(err))
	assert.False(t, errors.IsRetryable(err))
}

func TestRegistryFirstRegisteredIsDefault(t *testing.T) {
	r := NewRegistry()
	first := &stubInvoker{name: "first"}
	second := &stubInvoker{name: "second"}

	require.NoError(t, r.Register(ProviderType("first"), first))
	require.NoError(t, r.Register(ProviderType("second"), second))

	got, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name())
}

func TestRegistryResolvePreferred(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ProviderType("alpha"), &stubInvoker{name: "alpha"}))
	require.NoError(t, r.Register(ProviderType("beta"), &stubInvoker{name: "beta"}))

	got, err := r.Resolve("beta")
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name())

	_, err = r.Resolve("gamma")
	require.Error(t, err)
	assert.Equal(t, errors.ClassConfiguration, errors.GetClass(err))
	assert.Contains(t, err.Error(), `"gamma"`)
}

func TestRegistryRejectsInvalidConfig(t *testing.T) {
	r := NewRegistry()

	err := r.Register(ProviderType("bad"), &stubInvoker{
		name:        "bad",
		validateErr: assert.AnError,
	})
	require.Error(t, err)
	assert.Empty(t, r.Registered())
}

func TestRegistrySetDefault(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(ProviderType("alpha"), &stubInvoker{name: "alpha"}))
	require.NoError(t, r.Register(ProviderType("beta"), &stubInvoker{name: "beta"}))

	require.NoError(t, r.SetDefault(ProviderType("beta")))
	got, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name())

	assert.Error(t, r.SetDefault(ProviderType("missing")))
}

func TestBaseConfigValidate(t *testing.T) {
	valid := DefaultBaseConfig()
	valid.APIKey = "key"
	assert.NoError(t, valid.Validate())

	missingKey := DefaultBaseConfig()
	assert.Error(t, missingKey.Validate())

	badTokens := DefaultBaseConfig()
	badTokens.APIKey = "key"
	badTokens.MaxTokens = 0
	assert.Error(t, badTokens.Validate())

	badTemp := DefaultBaseConfig()
	badTemp.APIKey = "key"
	badTemp.Temperature = 3.5
	assert.Error(t, badTemp.Validate())
}
