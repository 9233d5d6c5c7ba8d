package blueprint

import "github.com/veltaire/planforge/core/pattern"

const (
	minObjectiveLength = 50

	objectivePoints    = 20
	teamSizePoints     = 15
	distinctRolesBonus = 10
	checkpointPoints   = 20
	phaseCountPoints   = 15
	phaseOrderBonus    = 5
	kpiPoints          = 10
	roiPoints          = 10

	maxScore = 100
)

// Score computes the deterministic quality score for an accepted plan.
// Every contribution is non-negative and the result is always in [0, 100].
func Score(plan *GeneratedPlan, selected pattern.Record) int {
	if plan == nil {
		return 0
	}

	score := 0

	if len(plan.BusinessObjective) >= minObjectiveLength {
		score += objectivePoints
	}

	if len(plan.DigitalTeam) == selected.AgentCount {
		score += teamSizePoints
		if allRolesDistinct(plan.DigitalTeam) {
			score += distinctRolesBonus
		}
	}

	if len(plan.HumanCheckpoints) == RequiredCheckpoints {
		score += checkpointPoints
	}

	if len(plan.Timeline.Phases) == RequiredPhases {
		score += phaseCountPoints
		if phasesInOrder(plan.Timeline.Phases) {
			score += phaseOrderBonus
		}
	}

	if len(plan.KPIImprovements) >= MinKPIs {
		score += kpiPoints
	}

	if plan.ROI != nil {
		score += roiPoints
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

func allRolesDistinct(team []DigitalTeamMember) bool {
	seen := make(map[string]bool, len(team))
	for _, member := range team {
		if seen[member.Role] {
			return false
		}
		seen[member.Role] = true
	}
	return true
}

func phasesInOrder(phases []TimelinePhase) bool {
	if len(phases) != RequiredPhases {
		return false
	}
	for i, phase := range phases {
		if phase.Phase != PhaseOrder[i] {
			return false
		}
	}
	return true
}
