package pattern

import (
	"log/slog"
	"strings"
)

// Selector picks a coordination pattern for a request. Selection order:
// a sanitized upstream recommendation wins, then keyword heuristics over the
// business-problem text, then the default. The returned name is always
// registered.
type Selector struct {
	registry *Registry
	logger   *slog.Logger
}

func NewSelector(registry *Registry, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{registry: registry, logger: logger}
}

// Select resolves the pattern for a request. recommended is the upstream
// (opportunity-level) recommendation and may be empty; problems is the
// flattened business-problem text from the profile.
func (s *Selector) Select(recommended string, problems []string) Record {
	chosen := s.choose(recommended, problems)

	rec, ok := s.registry.Get(chosen)
	if !ok {
		// Data-quality event, not an error: the upstream recommendation
		// named a pattern this process does not know.
		s.logger.Warn("unknown coordination pattern, substituting default",
			"requested", string(chosen),
			"default", string(Default))
		rec, _ = s.registry.Get(Default)
	}
	return rec
}

func (s *Selector) choose(recommended string, problems []string) Name {
	if trimmed := strings.TrimSpace(recommended); trimmed != "" {
		// Opportunity-level intelligence outranks generic heuristics.
		return Normalize(trimmed)
	}
	return heuristicChoice(problems)
}

// heuristicChoice applies the ordered keyword rules against the concatenated
// business-problem text.
func heuristicChoice(problems []string) Name {
	text := strings.ToLower(strings.Join(problems, " "))

	switch {
	case strings.Contains(text, "manual") &&
		(strings.Contains(text, "process") || strings.Contains(text, "data entry")):
		return ManagerWorkers
	case strings.Contains(text, "research") ||
		strings.Contains(text, "analysis") ||
		strings.Contains(text, "changing"):
		return PlanActReflect
	case strings.Contains(text, "investment") ||
		strings.Contains(text, "strategic") ||
		strings.Contains(text, "allocation"):
		return HierarchicalPlanning
	default:
		return ManagerWorkers
	}
}
