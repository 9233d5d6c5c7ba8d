// Package opportunity normalizes untrusted opportunity context. Callers hand
// the pipeline arbitrarily-shaped JSON values; everything downstream only
// ever sees the string-typed Sanitized record produced here.
package opportunity

import (
	"fmt"
	"log/slog"
)

// Sanitized is the safe, fully string-typed form of an opportunity context.
// Every field is always defined; absent or malformed input fields become
// empty strings or nil slices.
type Sanitized struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`

	RecommendedPattern string `json:"recommended_pattern"`
	PatternRationale   string `json:"pattern_rationale"`

	PrimaryMetrics []string `json:"primary_metrics"`
	ROIEstimate    string   `json:"roi_estimate"`
	TimeToValue    string   `json:"time_to_value"`
	Confidence     string   `json:"confidence"`

	Complexity    string   `json:"complexity"`
	Timeframe     string   `json:"timeframe"`
	Prerequisites []string `json:"prerequisites"`
	RiskFactors   []string `json:"risk_factors"`

	Technologies []string `json:"technologies"`

	// Present reports whether any opportunity context was supplied at all.
	Present bool `json:"present"`
}

// Default returns the safe-default record used when no usable context
// exists.
func Default() Sanitized {
	return Sanitized{}
}

// Sanitize converts an arbitrarily-shaped value into a Sanitized record. It
// is total: it never panics and never returns an error, whatever raw holds.
// Sanitizing an already-well-formed context is a no-op in the sense that
// every well-typed field survives unchanged.
func Sanitize(raw any, logger *slog.Logger) Sanitized {
	if logger == nil {
		logger = slog.Default()
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		if raw != nil {
			// Recovered locally: malformed context is a data-quality event,
			// never a caller-visible failure.
			logger.Warn("opportunity context is not an object, using defaults",
				"got", fmt.Sprintf("%T", raw))
		}
		return Default()
	}

	impact := childObject(obj, "business_impact")
	impl := childObject(obj, "implementation")

	return Sanitized{
		Title:       stringField(obj, "title"),
		Category:    stringField(obj, "category"),
		Description: stringField(obj, "description"),

		RecommendedPattern: stringField(obj, "recommended_pattern"),
		PatternRationale:   stringField(obj, "pattern_rationale"),

		PrimaryMetrics: stringSliceField(impact, "primary_metrics"),
		ROIEstimate:    stringField(impact, "roi_estimate"),
		TimeToValue:    stringField(impact, "time_to_value"),
		Confidence:     stringField(impact, "confidence"),

		Complexity:    stringField(impl, "complexity"),
		Timeframe:     stringField(impl, "timeframe"),
		Prerequisites: stringSliceField(impl, "prerequisites"),
		RiskFactors:   stringSliceField(impl, "risk_factors"),

		Technologies: stringSliceField(obj, "technologies"),

		Present: true,
	}
}

func childObject(obj map[string]any, key string) map[string]any {
	if obj == nil {
		return nil
	}
	child, _ := obj[key].(map[string]any)
	return child
}

// stringField extracts a string-typed field, coercing scalar types and
// dropping everything else.
func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	return coerceString(obj[key])
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return trimFloat(t)
	case int:
		return fmt.Sprintf("%d", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// stringSliceField extracts a list of strings. A bare string becomes a
// single-element list; non-string elements are coerced where possible and
// dropped otherwise.
func stringSliceField(obj map[string]any, key string) []string {
	if obj == nil {
		return nil
	}

	switch t := obj[key].(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		if len(t) == 0 {
			return nil
		}
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return nil
	}
}
