package blueprint

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/veltaire/planforge/core/errors"
	"github.com/veltaire/planforge/core/pattern"
)

// Validator enforces the structural contract on raw model responses. Checks
// are collected, never short-circuited, so a rejection enumerates every
// violation at once. The validator never substitutes defaults for missing
// fields.
type Validator struct {
	logger *slog.Logger
}

func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// Validate checks raw against the contract for the selected pattern. On
// success it returns the typed plan; on failure a schema-violation error
// carrying the itemized list.
func (v *Validator) Validate(raw any, selected pattern.Record) (*GeneratedPlan, error) {
	violations := collectViolations(raw, selected)
	if len(violations) > 0 {
		return nil, errors.NewSchemaViolation("generated plan failed structural validation", violations)
	}

	plan, err := decodePlan(raw)
	if err != nil {
		return nil, errors.NewSchemaViolation("generated plan failed structural validation",
			[]string{fmt.Sprintf("response could not be decoded into a plan: %v", err)})
	}

	for _, warning := range collectWarnings(plan) {
		v.logger.Warn("blueprint quality warning", "warning", warning)
	}

	return plan, nil
}

func collectViolations(raw any, selected pattern.Record) []string {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return []string{"response must be a non-null JSON object"}
	}

	var violations []string
	violations = append(violations, checkObjective(obj)...)
	violations = append(violations, checkTeam(obj, selected)...)
	violations = append(violations, checkCheckpoints(obj)...)
	violations = append(violations, checkTimeline(obj)...)
	violations = append(violations, checkKPIs(obj)...)
	return violations
}

func checkObjective(obj map[string]any) []string {
	s, ok := obj["businessObjective"].(string)
	if !ok || s == "" {
		return []string{"businessObjective: must be a non-empty string"}
	}
	return nil
}

func checkTeam(obj map[string]any, selected pattern.Record) []string {
	team, ok := obj["digitalTeam"].([]any)
	if !ok {
		return []string{"digitalTeam: must be an array"}
	}
	if len(team) != selected.AgentCount {
		return []string{fmt.Sprintf(
			"digitalTeam: pattern %s requires exactly %d team members, got %d",
			selected.Name, selected.AgentCount, len(team))}
	}
	return nil
}

func checkCheckpoints(obj map[string]any) []string {
	checkpoints, ok := obj["humanCheckpoints"].([]any)
	if !ok {
		return []string{"humanCheckpoints: must be an array"}
	}
	if len(checkpoints) != RequiredCheckpoints {
		return []string{fmt.Sprintf(
			"humanCheckpoints: expected exactly %d checkpoints, got %d",
			RequiredCheckpoints, len(checkpoints))}
	}
	return nil
}

func checkTimeline(obj map[string]any) []string {
	timeline, ok := obj["agenticTimeline"].(map[string]any)
	if !ok {
		return []string{"agenticTimeline: must be an object"}
	}

	var violations []string

	phases, ok := timeline["phases"].([]any)
	if !ok {
		violations = append(violations, "agenticTimeline.phases: must be an array")
	} else if len(phases) != RequiredPhases {
		violations = append(violations, fmt.Sprintf(
			"agenticTimeline.phases: expected exactly %d phases, got %d",
			RequiredPhases, len(phases)))
	}

	if _, ok := timeline["totalDurationWeeks"].(float64); !ok {
		violations = append(violations, "agenticTimeline.totalDurationWeeks: must be a number")
	}

	return violations
}

func checkKPIs(obj map[string]any) []string {
	kpis, ok := obj["kpiImprovements"].([]any)
	if !ok {
		return []string{"kpiImprovements: must be an array"}
	}
	if len(kpis) < MinKPIs {
		return []string{fmt.Sprintf(
			"kpiImprovements: expected at least %d entries, got %d",
			MinKPIs, len(kpis))}
	}
	return nil
}

// collectWarnings runs the non-fatal quality pass. Warnings are logged
// upstream and never block acceptance.
func collectWarnings(plan *GeneratedPlan) []string {
	var warnings []string

	warnings = append(warnings, linkageWarnings(plan)...)
	warnings = append(warnings, roleWarnings(plan)...)
	warnings = append(warnings, phaseWarnings(plan)...)

	return warnings
}

func linkageWarnings(plan *GeneratedPlan) []string {
	linked := make(map[string]bool)
	for _, kpi := range plan.KPIImprovements {
		for _, agent := range kpi.LinkedAgents {
			linked[agent] = true
		}
	}

	var unlinked int
	for _, member := range plan.DigitalTeam {
		if !linked[member.Role] && !linked[member.Title] {
			unlinked++
		}
	}

	if unlinked > 0 {
		return []string{fmt.Sprintf("%d team member(s) have no KPI linkage", unlinked)}
	}
	return nil
}

func roleWarnings(plan *GeneratedPlan) []string {
	seen := make(map[string]bool, len(plan.DigitalTeam))
	for _, member := range plan.DigitalTeam {
		if seen[member.Role] {
			return []string{fmt.Sprintf("duplicate team role %q", member.Role)}
		}
		seen[member.Role] = true
	}
	return nil
}

func phaseWarnings(plan *GeneratedPlan) []string {
	if len(plan.Timeline.Phases) != RequiredPhases {
		return nil
	}
	for i, phase := range plan.Timeline.Phases {
		if phase.Phase != PhaseOrder[i] {
			return []string{fmt.Sprintf(
				"timeline phases are not tagged %v in order", PhaseOrder)}
		}
	}
	return nil
}

// decodePlan converts the raw object into the typed plan via a JSON
// round-trip. Unknown fields are dropped; typed fields with incompatible
// values fail decoding.
func decodePlan(raw any) (*GeneratedPlan, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var plan GeneratedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
