package prompt

import "github.com/veltaire/planforge/core/blueprint"

// Structural requirements restated in prompts. Aliased from the blueprint
// contract so prompt text and validator can never drift apart.
const (
	requiredCheckpoints = blueprint.RequiredCheckpoints
	requiredPhases      = blueprint.RequiredPhases
	minKPIs             = blueprint.MinKPIs
)

var (
	phaseCrawl = blueprint.PhaseOrder[0]
	phaseWalk  = blueprint.PhaseOrder[1]
	phaseRun   = blueprint.PhaseOrder[2]
)
