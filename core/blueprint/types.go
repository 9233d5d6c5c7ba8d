// Package blueprint defines the generated deployment plan, the structural
// contract a model response must satisfy, and the deterministic quality
// score computed over accepted plans.
package blueprint

import (
	"time"

	"github.com/veltaire/planforge/core/pattern"
)

// Structural invariants every accepted blueprint satisfies.
const (
	RequiredCheckpoints = 4
	RequiredPhases      = 3
	MinKPIs             = 3
)

// PhaseOrder is the mandatory rollout phase sequence.
var PhaseOrder = [RequiredPhases]string{"crawl", "walk", "run"}

// DigitalTeamMember is one AI agent in the deployed team.
type DigitalTeamMember struct {
	Role                 string   `json:"role"`
	Title                string   `json:"title"`
	Responsibility       string   `json:"coreResponsibility"`
	Tools                []string `json:"toolsUsed"`
	OversightLevel       string   `json:"oversightLevel"`
	OversightDescription string   `json:"oversightDescription"`
	LinkedKPIs           []string `json:"linkedKPIs"`
}

// HumanCheckpoint is a required point of human oversight.
type HumanCheckpoint struct {
	Checkpoint  string `json:"checkpoint"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	Frequency   string `json:"frequency"`
}

// TimelinePhase is one of the crawl/walk/run rollout phases.
type TimelinePhase struct {
	Phase            string   `json:"phase"`
	DurationWeeks    int      `json:"durationWeeks"`
	Milestones       []string `json:"milestones"`
	RiskMitigations  []string `json:"riskMitigations"`
	OversightLevel   string   `json:"oversightLevel"`
	HumanInvolvement string   `json:"humanInvolvement"`
}

// TrustStep is the interpolated autonomy level for one phase.
type TrustStep struct {
	Phase      string   `json:"phase"`
	TrustLevel int      `json:"trustLevel"`
	Safeguards []string `json:"safeguards"`
}

// Timeline is the phased rollout plan.
type Timeline struct {
	Phases             []TimelinePhase `json:"phases"`
	ProgressiveTrust   []TrustStep     `json:"progressiveTrust"`
	TotalDurationWeeks int             `json:"totalDurationWeeks"`
}

// KPIImprovement is one projected metric improvement.
type KPIImprovement struct {
	KPI                string   `json:"kpi"`
	CurrentValue       string   `json:"currentValue"`
	TargetValue        string   `json:"targetValue"`
	ImprovementPercent float64  `json:"improvementPercent"`
	LinkedAgents       []string `json:"linkedAgents"`
	MeasurementMethod  string   `json:"measurementMethod"`
	Timeframe          string   `json:"timeframe"`
}

// ROIProjection is the projected return, either model-supplied or computed
// from the initiative's process and investment metrics.
type ROIProjection struct {
	ROIPercent        float64  `json:"roiPercent"`
	PaybackMonths     float64  `json:"paybackMonths"`
	ConfidenceLevel   string   `json:"confidenceLevel"`
	ConfidenceFactors []string `json:"confidenceFactors"`
}

// Provenance records how a blueprint was produced.
type Provenance struct {
	BlueprintID   string    `json:"blueprintId"`
	Provider      string    `json:"provider"`
	Model         string    `json:"model"`
	PromptVersion string    `json:"promptVersion"`
	Attempts      int       `json:"attempts"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// AgenticBlueprint is the final aggregate. It is created once per successful
// generation and immutable afterwards; persistence is someone else's job.
type AgenticBlueprint struct {
	BusinessObjective   string              `json:"businessObjective"`
	DigitalTeam         []DigitalTeamMember `json:"digitalTeam"`
	HumanCheckpoints    []HumanCheckpoint   `json:"humanCheckpoints"`
	Timeline            Timeline            `json:"agenticTimeline"`
	KPIImprovements     []KPIImprovement    `json:"kpiImprovements"`
	ROI                 *ROIProjection      `json:"roiProjection,omitempty"`
	Pattern             pattern.Name        `json:"selectedPattern,omitempty"`
	PatternRationale    string              `json:"patternRationale,omitempty"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	QualityScore        int                 `json:"qualityScore"`
	Provenance          Provenance          `json:"provenance"`
}

// GeneratedPlan is the validated, typed form of a model response before
// assembly adds pattern, ROI, and provenance.
type GeneratedPlan struct {
	BusinessObjective string              `json:"businessObjective"`
	DigitalTeam       []DigitalTeamMember `json:"digitalTeam"`
	HumanCheckpoints  []HumanCheckpoint   `json:"humanCheckpoints"`
	Timeline          Timeline            `json:"agenticTimeline"`
	KPIImprovements   []KPIImprovement    `json:"kpiImprovements"`
	ROI               *ROIProjection      `json:"roiProjection,omitempty"`
}
