package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/planforge/core/domain"
	"github.com/veltaire/planforge/core/extract"
	"github.com/veltaire/planforge/core/opportunity"
	"github.com/veltaire/planforge/core/pattern"
	"github.com/veltaire/planforge/core/profile"
	"github.com/veltaire/planforge/core/providers"
)

func composeInput(t *testing.T) Input {
	t.Helper()

	prof := &profile.Profile{
		CompanyName:   "Meridian Health Partners",
		Industry:      "Healthcare",
		EmployeeCount: "1,500",
		Initiatives: []profile.StrategicInitiative{
			{
				Initiative:       "Claims automation",
				Priority:         profile.PriorityHigh,
				BusinessProblems: []string{"manual claims process is error-prone"},
			},
		},
		Systems: []profile.SystemApplication{{Name: "Epic"}},
	}

	rec, ok := pattern.NewRegistry().Get(pattern.ManagerWorkers)
	require.True(t, ok)

	reg := domain.NewRegistry()
	return Input{
		Profile:  prof,
		Business: extract.FromProfile(prof),
		Domain:   domain.BuildContext(reg, domain.DomainHealthcare, prof.SystemNames()),
		Pattern:  rec,
		Focus:    FocusComprehensive,
	}
}

func TestComposeStatesStructuralRequirements(t *testing.T) {
	prompts := Compose(composeInput(t))

	// System side carries the JSON contract.
	assert.Contains(t, prompts.System, "exactly 4 members")
	assert.Contains(t, prompts.System, "exactly 4 entries")
	assert.Contains(t, prompts.System, "at least 3 entries")
	assert.Contains(t, prompts.System, `"crawl", "walk", "run"`)
	assert.Contains(t, prompts.System, "single JSON object")

	// User side restates the counts for the selected pattern.
	assert.Contains(t, prompts.User, "exactly 4 members")
	assert.Contains(t, prompts.User, "exactly 4 human oversight checkpoints")
	assert.Contains(t, prompts.User, "at least 3 KPI improvements")
}

func TestComposeIncludesCompanyAndDomain(t *testing.T) {
	prompts := Compose(composeInput(t))

	assert.Contains(t, prompts.User, "Meridian Health Partners")
	assert.Contains(t, prompts.User, "Epic")
	assert.Contains(t, prompts.User, "healthcare")
	assert.Contains(t, prompts.User, "Claims automation")
}

func TestComposeIsPure(t *testing.T) {
	in := composeInput(t)

	first := Compose(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compose(in))
	}
}

func TestComposeFocusModes(t *testing.T) {
	in := composeInput(t)

	in.Focus = FocusSingleInitiative
	in.Initiative = &in.Profile.Initiatives[0]
	single := Compose(in)
	assert.Contains(t, single.User, "Focus on this single initiative: Claims automation")

	in.Focus = FocusOpportunity
	in.Opportunity = opportunity.Sanitized{
		Title:       "Denial triage",
		Category:    "Claims",
		Description: "Classify and route claim denials",
		Present:     true,
	}
	opp := Compose(in)
	assert.Contains(t, opp.User, "Focus on this opportunity: Denial triage")

	in.Focus = FocusComprehensive
	comp := Compose(in)
	assert.Contains(t, comp.User, "comprehensive plan across all 1 strategic initiatives")
}

func TestComposeCapabilityPhrasing(t *testing.T) {
	in := composeInput(t)

	in.Capabilities = providers.Capabilities{StructuredOutput: true}
	structured := Compose(in)
	assert.Contains(t, structured.System, "enforced output schema")

	in.Capabilities = providers.Capabilities{}
	plain := Compose(in)
	assert.Contains(t, plain.System, "Double-check that the output parses as JSON")
	assert.NotContains(t, plain.System, "enforced output schema")
}

func TestComposeSpecialInstructions(t *testing.T) {
	in := composeInput(t)
	in.Instructions = "Keep all data processing inside the EU."

	prompts := Compose(in)
	assert.Contains(t, prompts.User, "Keep all data processing inside the EU.")
}

func TestCorrectiveFirstAttemptUnchanged(t *testing.T) {
	base := Prompts{System: "sys", User: "user"}

	assert.Equal(t, base, Corrective(base, 1, nil, providers.Capabilities{}))
	assert.Equal(t, base, Corrective(base, 1, []string{"x"}, providers.Capabilities{}))
	assert.Equal(t, base, Corrective(base, 2, nil, providers.Capabilities{}))
}

func TestCorrectiveOverlayListsViolations(t *testing.T) {
	base := Prompts{System: "sys", User: "user"}
	violations := []string{
		"kpiImprovements: expected at least 3 entries, got 2",
		"humanCheckpoints: expected exactly 4 checkpoints, got 3",
	}

	fixed := Corrective(base, 2, violations, providers.Capabilities{})

	assert.True(t, strings.HasPrefix(fixed.System, "sys\n"))
	assert.True(t, strings.HasPrefix(fixed.User, "user\n"))
	assert.Contains(t, fixed.User, "PREVIOUS ATTEMPT REJECTED (attempt 1)")
	for _, v := range violations {
		assert.Contains(t, fixed.User, v)
	}
	assert.Contains(t, fixed.User, "Generate at least 3 kpiImprovements entries.")
	assert.Contains(t, fixed.User, "Generate exactly 4 humanCheckpoints entries.")
}

func TestCorrectiveIsPure(t *testing.T) {
	base := Prompts{System: "sys", User: "user"}
	violations := []string{"digitalTeam: wrong size"}

	first := Corrective(base, 3, violations, providers.Capabilities{})
	second := Corrective(base, 3, violations, providers.Capabilities{})

	assert.Equal(t, first, second)
	assert.Equal(t, Prompts{System: "sys", User: "user"}, base)
}
