package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassRetryability(t *testing.T) {
	assert.True(t, ClassProvider.Retryable())
	assert.True(t, ClassSchemaViolation.Retryable())
	assert.False(t, ClassPrecondition.Retryable())
	assert.False(t, ClassConfiguration.Retryable())
	assert.False(t, ClassUntrustedInput.Retryable())
	assert.False(t, ClassInternalInvariant.Retryable())
}

func TestGetClassDefaultsToInternalInvariant(t *testing.T) {
	assert.Equal(t, ClassInternalInvariant, GetClass(goerrors.New("mystery")))
	assert.False(t, IsRetryable(goerrors.New("mystery")))
}

func TestGetClassUnwraps(t *testing.T) {
	inner := NewProvider("call failed", HintNetwork, nil)
	wrapped := fmt.Errorf("generation: %w", inner)

	assert.Equal(t, ClassProvider, GetClass(wrapped))
	assert.True(t, IsRetryable(wrapped))
}

func TestViolationList(t *testing.T) {
	violations := []string{"digitalTeam: wrong size", "kpiImprovements: too few"}
	err := NewSchemaViolation("rejected", violations)

	assert.Equal(t, violations, ViolationList(err))
	assert.Nil(t, ViolationList(NewPrecondition("no initiatives")))
	assert.Nil(t, ViolationList(goerrors.New("plain")))
}

func TestErrorMessageIncludesViolations(t *testing.T) {
	err := NewSchemaViolation("rejected", []string{"a", "b"})
	msg := err.Error()

	assert.Contains(t, msg, "schema_violation")
	assert.Contains(t, msg, "a; b")
}

func TestIsMatchesByClass(t *testing.T) {
	a := NewConfiguration("no providers", nil)
	b := NewConfiguration("different message", nil)

	assert.True(t, goerrors.Is(a, b))
	assert.False(t, goerrors.Is(a, NewPrecondition("x")))
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ProviderHint
	}{
		{"rate limit status code", goerrors.New("unexpected status 429"), HintRateLimited},
		{"rate limit text", goerrors.New("rate limit exceeded"), HintRateLimited},
		{"auth status code", goerrors.New("status 401 from api"), HintAuthFailure},
		{"missing api key", goerrors.New("invalid api key provided"), HintAuthFailure},
		{"quota", goerrors.New("monthly quota exhausted"), HintQuota},
		{"connection", goerrors.New("connection refused"), HintNetwork},
		{"deadline", context.DeadlineExceeded, HintNetwork},
		{"unknown", goerrors.New("something odd"), HintUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := ClassifyProviderError(tt.err)
			assert.Equal(t, ClassProvider, ce.Class)
			assert.Equal(t, tt.want, ce.Hint)
			assert.ErrorIs(t, ce, tt.err)
		})
	}
}

func TestClassifyProviderErrorPassthrough(t *testing.T) {
	original := NewSchemaViolation("rejected", []string{"x"})
	assert.Same(t, original, ClassifyProviderError(original))
	assert.Nil(t, ClassifyProviderError(nil))
}
