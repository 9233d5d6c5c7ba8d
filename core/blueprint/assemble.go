package blueprint

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/veltaire/planforge/core/errors"
	"github.com/veltaire/planforge/core/pattern"
)

// roiDivergenceThreshold is the relative difference beyond which a
// model-supplied ROI and the independently computed projection are flagged
// as divergent.
const roiDivergenceThreshold = 0.5

// AssemblyInput carries everything the assembler combines besides the
// validated plan itself.
type AssemblyInput struct {
	Pattern             pattern.Record
	PatternRationale    string
	FallbackROI         *ROIProjection
	SpecialInstructions string
	Provider            string
	Model               string
	PromptVersion       string
	Attempts            int
}

// Assemble builds the final immutable blueprint from a validated plan. It
// performs no data validation (by this point the structure is guaranteed)
// but it does defend its own invariants: any failure here is a bug in the
// validator/assembler contract and surfaces as an internal-invariant error,
// never as a data-quality rejection.
func Assemble(plan *GeneratedPlan, in AssemblyInput) (*AgenticBlueprint, error) {
	if plan == nil {
		return nil, errors.NewInternalInvariant("assemble called with nil plan")
	}
	if len(plan.DigitalTeam) != in.Pattern.AgentCount {
		return nil, errors.NewInternalInvariant(fmt.Sprintf(
			"validated plan has %d team members but pattern %s requires %d",
			len(plan.DigitalTeam), in.Pattern.Name, in.Pattern.AgentCount))
	}
	if len(plan.HumanCheckpoints) != RequiredCheckpoints {
		return nil, errors.NewInternalInvariant(fmt.Sprintf(
			"validated plan has %d checkpoints, expected %d",
			len(plan.HumanCheckpoints), RequiredCheckpoints))
	}
	if len(plan.Timeline.Phases) != RequiredPhases {
		return nil, errors.NewInternalInvariant(fmt.Sprintf(
			"validated plan has %d timeline phases, expected %d",
			len(plan.Timeline.Phases), RequiredPhases))
	}

	timeline := plan.Timeline
	if len(timeline.ProgressiveTrust) == 0 {
		timeline.ProgressiveTrust = interpolateTrust(timeline.Phases)
	}

	return &AgenticBlueprint{
		BusinessObjective:   plan.BusinessObjective,
		DigitalTeam:         plan.DigitalTeam,
		HumanCheckpoints:    plan.HumanCheckpoints,
		Timeline:            timeline,
		KPIImprovements:     plan.KPIImprovements,
		ROI:                 resolveROI(plan.ROI, in.FallbackROI),
		Pattern:             in.Pattern.Name,
		PatternRationale:    in.PatternRationale,
		SpecialInstructions: in.SpecialInstructions,
		QualityScore:        Score(plan, in.Pattern),
		Provenance: Provenance{
			BlueprintID:   uuid.NewString(),
			Provider:      in.Provider,
			Model:         in.Model,
			PromptVersion: in.PromptVersion,
			Attempts:      in.Attempts,
			GeneratedAt:   time.Now().UTC(),
		},
	}, nil
}

// resolveROI applies the projection precedence: a model-supplied projection
// wins, the fallback fills in when the model omitted one, and when both
// exist and disagree materially the divergence is annotated on the winning
// projection rather than silently discarded.
func resolveROI(fromModel, fallback *ROIProjection) *ROIProjection {
	switch {
	case fromModel == nil:
		return fallback
	case fallback == nil:
		return fromModel
	}

	resolved := *fromModel
	if diverges(fromModel.ROIPercent, fallback.ROIPercent) {
		resolved.ConfidenceFactors = append(resolved.ConfidenceFactors, fmt.Sprintf(
			"Validation note: independent projection from process metrics yields %.1f%% ROI vs generated %.1f%%",
			fallback.ROIPercent, fromModel.ROIPercent))
	}
	return &resolved
}

func diverges(a, b float64) bool {
	larger := math.Max(math.Abs(a), math.Abs(b))
	if larger == 0 {
		return false
	}
	return math.Abs(a-b)/larger > roiDivergenceThreshold
}

// interpolateTrust derives the progressive-trust sequence when the model did
// not supply one: autonomy steps up linearly across the three phases.
func interpolateTrust(phases []TimelinePhase) []TrustStep {
	levels := [RequiredPhases]int{25, 60, 90}
	safeguards := [RequiredPhases][]string{
		{"Human approves every outbound action", "Daily output review"},
		{"Human approves exceptions only", "Weekly sampled review"},
		{"Humans monitor dashboards and alerts", "Monthly audit of sampled decisions"},
	}

	steps := make([]TrustStep, 0, len(phases))
	for i, phase := range phases {
		idx := i
		if idx >= RequiredPhases {
			idx = RequiredPhases - 1
		}
		steps = append(steps, TrustStep{
			Phase:      phase.Phase,
			TrustLevel: levels[idx],
			Safeguards: safeguards[idx],
		})
	}
	return steps
}
