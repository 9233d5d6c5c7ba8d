package extract

import (
	"fmt"

	"github.com/veltaire/planforge/core/profile"
)

const (
	smallCompanyMax = 250
	largeCompanyMin = 1000
)

// CompanyContext carries the company-specific signals pulled from the
// profile: what they run, what hurts, what they already measure, and what
// will constrain an agent rollout organizationally.
type CompanyContext struct {
	SystemsInventory    []string `json:"systems_inventory"`
	BusinessProblems    []string `json:"business_problems"`
	ExistingMetrics     []string `json:"existing_metrics"`
	PriorityInitiatives []string `json:"priority_initiatives"`
	Constraints         []string `json:"constraints"`
}

// CompanyFor derives the company context. Missing profile sections simply
// produce empty lists; nothing here can fail.
func CompanyFor(p *profile.Profile) CompanyContext {
	if p == nil {
		return CompanyContext{}
	}

	return CompanyContext{
		SystemsInventory:    p.SystemNames(),
		BusinessProblems:    p.BusinessProblems(),
		ExistingMetrics:     p.SuccessMetrics(),
		PriorityInitiatives: p.HighPriorityInitiatives(),
		Constraints:         organizationalConstraints(p),
	}
}

func organizationalConstraints(p *profile.Profile) []string {
	var constraints []string

	employees := p.EmployeeCountValue()
	switch {
	case employees > 0 && employees <= smallCompanyMax:
		constraints = append(constraints,
			"Limited dedicated IT staff; favor managed and low-maintenance tooling",
			"Budget approvals concentrated in a small leadership group")
	case employees >= largeCompanyMin:
		constraints = append(constraints,
			"Formal change-management and governance processes apply",
			"Multi-layer approval chains lengthen rollout decisions")
	}

	if IsRegulatedIndustry(p.Industry) {
		constraints = append(constraints,
			fmt.Sprintf("Regulated industry (%s): human review required on externally visible outputs", p.Industry),
			"Audit trails must be retained for all automated decisions")
	}

	return constraints
}
