package blueprint

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls the first JSON object out of a model response. Providers
// return text; the value may arrive bare, fenced in a code block, or wrapped
// in prose. Returns the decoded value, or nil when no JSON object decodes.
func ExtractJSON(text string) any {
	candidate := strings.TrimSpace(stripFences(text))

	if v := decodeObject(candidate); v != nil {
		return v
	}

	// Fall back to the first balanced {...} span.
	if span := firstObjectSpan(candidate); span != "" {
		return decodeObject(span)
	}
	return nil
}

func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func decodeObject(candidate string) any {
	if !strings.HasPrefix(strings.TrimSpace(candidate), "{") {
		return nil
	}

	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil
	}
	return v
}

// firstObjectSpan finds the first brace-balanced object literal, ignoring
// braces inside strings.
func firstObjectSpan(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
