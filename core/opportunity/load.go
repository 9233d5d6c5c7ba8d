package opportunity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a raw opportunity context from a yaml file. The result is
// intentionally untyped; it goes straight through Sanitize.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read opportunity: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse opportunity: %w", err)
	}
	return normalizeKeys(raw), nil
}

// normalizeKeys rewrites yaml's map[any]any shapes into map[string]any so
// the sanitizer sees the same shape JSON decoding would produce.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return v
	}
}
