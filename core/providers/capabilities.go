package providers

import "strings"

// Capabilities are the generation-model capability flags the prompt composer
// keys instructional phrasing on. They only change prompt wording, never
// business logic.
type Capabilities struct {
	StructuredOutput  bool `json:"structured_output"`
	ExtendedReasoning bool `json:"extended_reasoning"`
	AdaptiveReasoning bool `json:"adaptive_reasoning"`
}

// CapabilitiesFor derives capability flags from a provider identifier.
// Matching is case-insensitive on known name fragments; unknown identifiers
// get no flags.
func CapabilitiesFor(identifier string) Capabilities {
	id := strings.ToLower(identifier)

	switch {
	case strings.Contains(id, "anthropic") || strings.Contains(id, "claude"):
		return Capabilities{ExtendedReasoning: true, AdaptiveReasoning: true}
	case strings.Contains(id, "openai") || strings.Contains(id, "gpt"):
		return Capabilities{StructuredOutput: true, ExtendedReasoning: true}
	case strings.Contains(id, "google") || strings.Contains(id, "gemini"):
		return Capabilities{StructuredOutput: true, AdaptiveReasoning: true}
	default:
		return Capabilities{}
	}
}
