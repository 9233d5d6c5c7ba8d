package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		identifier string
		want       Capabilities
	}{
		{"anthropic claude-sonnet-4-5-20250901", Capabilities{ExtendedReasoning: true, AdaptiveReasoning: true}},
		{"Claude", Capabilities{ExtendedReasoning: true, AdaptiveReasoning: true}},
		{"openai gpt-5.2", Capabilities{StructuredOutput: true, ExtendedReasoning: true}},
		{"GPT-4o", Capabilities{StructuredOutput: true, ExtendedReasoning: true}},
		{"google gemini-2.5-pro", Capabilities{StructuredOutput: true, AdaptiveReasoning: true}},
		{"Gemini", Capabilities{StructuredOutput: true, AdaptiveReasoning: true}},
		{"llama-70b", Capabilities{}},
		{"", Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilitiesFor(tt.identifier))
		})
	}
}
