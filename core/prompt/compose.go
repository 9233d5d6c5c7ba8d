// Package prompt composes the system and user prompt blocks sent to the
// model-invocation collaborator. Composition is a pure function of its
// inputs; the corrective retry overlay lives in corrective.go.
package prompt

import (
	"fmt"
	"strings"

	"github.com/veltaire/planforge/core/domain"
	"github.com/veltaire/planforge/core/extract"
	"github.com/veltaire/planforge/core/opportunity"
	"github.com/veltaire/planforge/core/pattern"
	"github.com/veltaire/planforge/core/profile"
	"github.com/veltaire/planforge/core/providers"
)

// Version tags the prompt template generation for provenance.
const Version = "v3"

// FocusMode selects which slice of the profile the blueprint targets.
type FocusMode string

const (
	FocusSingleInitiative FocusMode = "single-initiative"
	FocusComprehensive    FocusMode = "comprehensive"
	FocusOpportunity      FocusMode = "opportunity-focused"
)

// Input carries everything prompt composition depends on.
type Input struct {
	Profile      *profile.Profile
	Business     extract.BusinessContext
	Domain       domain.Context
	Pattern      pattern.Record
	Opportunity  opportunity.Sanitized
	Focus        FocusMode
	Initiative   *profile.StrategicInitiative
	Capabilities providers.Capabilities
	Instructions string
}

// Prompts is the composed pair handed to the orchestrator.
type Prompts struct {
	System string
	User   string
}

// Compose builds the prompt pair. Capability flags only change instructional
// phrasing; every structural requirement (team size, checkpoint count, phase
// structure, KPI minimum) is stated regardless of provider.
func Compose(in Input) Prompts {
	return Prompts{
		System: composeSystem(in),
		User:   composeUser(in),
	}
}

func composeSystem(in Input) string {
	var b strings.Builder

	b.WriteString("You are an enterprise AI-deployment architect. ")
	b.WriteString("You design teams of cooperating AI agents with human oversight, phased rollouts, and measurable outcomes.\n\n")

	fmt.Fprintf(&b, "The deployment uses the %s coordination pattern: %s\n\n",
		in.Pattern.DisplayName, in.Pattern.Description)

	b.WriteString("Respond with a single JSON object and nothing else: no prose, no markdown fences. The object must contain:\n")
	fmt.Fprintf(&b, "- businessObjective: string, one clear sentence of at least 50 characters\n")
	fmt.Fprintf(&b, "- digitalTeam: array of exactly %d members, each with role, title, coreResponsibility, toolsUsed, oversightLevel, oversightDescription, linkedKPIs\n", in.Pattern.AgentCount)
	fmt.Fprintf(&b, "- humanCheckpoints: array of exactly %d entries, each with checkpoint, description, importance, frequency\n", requiredCheckpoints)
	fmt.Fprintf(&b, "- agenticTimeline: object with phases (exactly %d, tagged %q, %q, %q in order, each with phase, durationWeeks, milestones, riskMitigations, oversightLevel, humanInvolvement) and totalDurationWeeks (number)\n",
		requiredPhases, phaseCrawl, phaseWalk, phaseRun)
	fmt.Fprintf(&b, "- kpiImprovements: array of at least %d entries, each with kpi, currentValue, targetValue, improvementPercent, linkedAgents, measurementMethod, timeframe\n", minKPIs)
	b.WriteString("- roiProjection: optional object with roiPercent, paybackMonths, confidenceLevel, confidenceFactors\n")

	b.WriteString(capabilityPhrasing(in.Capabilities))

	return b.String()
}

func capabilityPhrasing(caps providers.Capabilities) string {
	var b strings.Builder

	if caps.StructuredOutput {
		b.WriteString("\nEmit strictly schema-conformant JSON; treat the field list above as an enforced output schema.\n")
	} else {
		b.WriteString("\nDouble-check that the output parses as JSON before finishing.\n")
	}
	if caps.ExtendedReasoning {
		b.WriteString("Reason through the full workflow (handoffs, failure points, oversight load) before writing the plan.\n")
	}
	if caps.AdaptiveReasoning {
		b.WriteString("Spend more reasoning effort on the team composition and KPI baselines than on boilerplate fields.\n")
	}

	return b.String()
}

func composeUser(in Input) string {
	var b strings.Builder

	writeCompanySection(&b, in)
	writeDomainSection(&b, in.Domain)
	writeFocusSection(&b, in)
	writeConstraintSection(&b, in)

	fmt.Fprintf(&b, "\nRequirements:\n")
	fmt.Fprintf(&b, "- The digital team must have exactly %d members, as required by the %s pattern.\n",
		in.Pattern.AgentCount, in.Pattern.DisplayName)
	fmt.Fprintf(&b, "- Define exactly %d human oversight checkpoints.\n", requiredCheckpoints)
	fmt.Fprintf(&b, "- The timeline must have exactly %d phases tagged %s, %s, %s in that order.\n",
		requiredPhases, phaseCrawl, phaseWalk, phaseRun)
	fmt.Fprintf(&b, "- Project at least %d KPI improvements tied to named agents.\n", minKPIs)

	if in.Instructions != "" {
		fmt.Fprintf(&b, "\nAdditional instructions from the requester:\n%s\n", in.Instructions)
	}

	return b.String()
}

func writeCompanySection(b *strings.Builder, in Input) {
	p := in.Profile

	fmt.Fprintf(b, "Company: %s\n", p.CompanyName)
	fmt.Fprintf(b, "Industry: %s\n", in.Business.Industry.Industry)
	fmt.Fprintf(b, "Employees: %s\n", p.EmployeeCount)

	if systems := in.Business.Company.SystemsInventory; len(systems) > 0 {
		fmt.Fprintf(b, "Existing systems: %s\n", strings.Join(systems, ", "))
	}
	if metrics := in.Business.Company.ExistingMetrics; len(metrics) > 0 {
		fmt.Fprintf(b, "Metrics already tracked: %s\n", strings.Join(metrics, ", "))
	}
}

func writeDomainSection(b *strings.Builder, d domain.Context) {
	fmt.Fprintf(b, "\nBusiness domain: %s\n", d.Domain)
	if len(d.Terms) > 0 {
		fmt.Fprintf(b, "Domain vocabulary to use: %s\n", strings.Join(d.Terms, ", "))
	}
	if len(d.WorkflowSteps) > 0 {
		fmt.Fprintf(b, "Typical workflow: %s\n", strings.Join(d.WorkflowSteps, " -> "))
	}
	if len(d.Tools) > 0 {
		fmt.Fprintf(b, "Candidate tools: %s\n", strings.Join(d.Tools, ", "))
	}
	if len(d.KeyMetrics) > 0 {
		fmt.Fprintf(b, "Domain metrics that matter: %s\n", strings.Join(d.KeyMetrics, ", "))
	}
	if len(d.Regulatory) > 0 {
		fmt.Fprintf(b, "Regulatory context: %s\n", strings.Join(d.Regulatory, ", "))
	}
}

func writeFocusSection(b *strings.Builder, in Input) {
	switch in.Focus {
	case FocusSingleInitiative:
		if in.Initiative != nil {
			fmt.Fprintf(b, "\nFocus on this single initiative: %s (priority %s)\n",
				in.Initiative.Initiative, in.Initiative.Priority)
			writeList(b, "Business problems", in.Initiative.BusinessProblems)
			writeList(b, "Expected outcomes", in.Initiative.ExpectedOutcomes)
			writeList(b, "Success metrics", in.Initiative.SuccessMetrics)
		}
	case FocusOpportunity:
		opp := in.Opportunity
		fmt.Fprintf(b, "\nFocus on this opportunity: %s (%s)\n%s\n",
			opp.Title, opp.Category, opp.Description)
		writeList(b, "Primary impact metrics", opp.PrimaryMetrics)
		writeList(b, "Prerequisites", opp.Prerequisites)
		writeList(b, "Risk factors", opp.RiskFactors)
		writeList(b, "AI technologies in play", opp.Technologies)
		if opp.ROIEstimate != "" {
			fmt.Fprintf(b, "Upstream ROI estimate: %s (confidence %s, time to value %s)\n",
				opp.ROIEstimate, opp.Confidence, opp.TimeToValue)
		}
	default:
		fmt.Fprintf(b, "\nBuild a comprehensive plan across all %d strategic initiatives:\n",
			len(in.Profile.Initiatives))
		for _, init := range in.Profile.Initiatives {
			fmt.Fprintf(b, "- %s (priority %s): %s\n",
				init.Initiative, init.Priority, strings.Join(init.BusinessProblems, "; "))
		}
	}
}

func writeConstraintSection(b *strings.Builder, in Input) {
	impl := in.Business.Implementation

	fmt.Fprintf(b, "\nImplementation assessment: complexity %d/100, risk %s, change readiness %d/100, timeline multiplier %.1fx\n",
		impl.ComplexityScore, impl.RiskLevel, impl.ChangeReadiness, impl.TimelineMultiplier)

	writeList(b, "Organizational constraints", in.Business.Company.Constraints)
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
