package domain

import "sort"

// Context is the derived, read-only view of a domain handed to the prompt
// composer: classification result, sector vocabulary, workflow order, and the
// tool list merged with whatever systems the company already runs.
type Context struct {
	Domain        BusinessDomain `json:"domain"`
	Terms         []string       `json:"terms"`
	WorkflowSteps []string       `json:"workflow_steps"`
	Tools         []string       `json:"tools"`
	KeyMetrics    []string       `json:"key_metrics"`
	Regulatory    []string       `json:"regulatory"`
	RoleTitles    []string       `json:"role_titles"`
}

// BuildContext derives a Context from the registry record for d, merging the
// domain's starter tools with the company's own named systems. Unknown
// domains resolve through the registry's generic fallback.
func BuildContext(reg *Registry, d BusinessDomain, companySystems []string) Context {
	rec, _ := reg.Get(d)

	roles := orderedRoles(rec.Roles)
	steps := make([]string, 0, len(roles))
	titles := make([]string, 0, len(roles))
	for _, role := range roles {
		steps = append(steps, role.Responsibility)
		titles = append(titles, role.Title)
	}

	return Context{
		Domain:        rec.Domain,
		Terms:         rec.Terminology,
		WorkflowSteps: steps,
		Tools:         mergeDistinct(rec.Tools, companySystems),
		KeyMetrics:    rec.KeyMetrics,
		Regulatory:    rec.Regulatory,
		RoleTitles:    titles,
	}
}

func orderedRoles(roles []SpecialistRole) []SpecialistRole {
	ordered := make([]SpecialistRole, len(roles))
	copy(ordered, roles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].WorkflowPosition < ordered[j].WorkflowPosition
	})
	return ordered
}

// mergeDistinct appends extras onto base, dropping duplicates while keeping
// first-seen order.
func mergeDistinct(base, extras []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extras))
	merged := make([]string, 0, len(base)+len(extras))
	for _, s := range base {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	for _, s := range extras {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	return merged
}
