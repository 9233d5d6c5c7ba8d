package prompt

import (
	"fmt"
	"strings"

	"github.com/veltaire/planforge/core/providers"
)

// Corrective returns the prompts adjusted for a retry attempt. It is a pure
// function: the overlay is computed from the base prompts, the attempt
// number, and the previous attempt's violations; nothing is mutated in
// place. Attempt 1 (the first try) returns the base unchanged.
func Corrective(base Prompts, attempt int, violations []string, caps providers.Capabilities) Prompts {
	if attempt <= 1 || len(violations) == 0 {
		return base
	}

	overlay := buildOverlay(attempt, violations, caps)

	return Prompts{
		System: base.System + "\n" + overlay,
		User:   base.User + "\n" + overlay,
	}
}

func buildOverlay(attempt int, violations []string, caps providers.Capabilities) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PREVIOUS ATTEMPT REJECTED (attempt %d). The response violated the required structure:\n", attempt-1)
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s\n", v)
	}

	b.WriteString("Fix every violation listed above. ")
	for _, v := range violations {
		if directive := directiveFor(v); directive != "" {
			b.WriteString(directive)
		}
	}

	if caps.StructuredOutput {
		b.WriteString("The field list in the system prompt is an enforced schema; conform to it exactly.")
	} else {
		b.WriteString("Return the complete corrected JSON object, not a diff or an apology.")
	}

	return b.String()
}

// directiveFor strengthens the overlay with an explicit demand for the
// violated element.
func directiveFor(violation string) string {
	switch {
	case strings.HasPrefix(violation, "kpiImprovements"):
		return fmt.Sprintf("Generate at least %d kpiImprovements entries. ", minKPIs)
	case strings.HasPrefix(violation, "humanCheckpoints"):
		return fmt.Sprintf("Generate exactly %d humanCheckpoints entries. ", requiredCheckpoints)
	case strings.HasPrefix(violation, "digitalTeam"):
		return "Generate a digitalTeam with exactly the required member count. "
	case strings.HasPrefix(violation, "agenticTimeline"):
		return fmt.Sprintf("Generate an agenticTimeline with exactly %d phases (%s/%s/%s) and a numeric totalDurationWeeks. ",
			requiredPhases, phaseCrawl, phaseWalk, phaseRun)
	case strings.HasPrefix(violation, "businessObjective"):
		return "Include a non-empty businessObjective string. "
	default:
		return ""
	}
}
