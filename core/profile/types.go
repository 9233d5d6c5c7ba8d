// Package profile defines the caller-owned business profile the pipeline
// reads. The pipeline never mutates a Profile.
package profile

import (
	"strconv"
	"strings"
)

// Profile describes the company requesting a blueprint.
type Profile struct {
	CompanyName   string                `json:"company_name" yaml:"company_name"`
	Industry      string                `json:"industry" yaml:"industry"`
	EmployeeCount string                `json:"employee_count" yaml:"employee_count"`
	Initiatives   []StrategicInitiative `json:"strategic_initiatives" yaml:"strategic_initiatives"`
	Systems       []SystemApplication   `json:"systems" yaml:"systems"`
}

// StrategicInitiative is one stated business initiative.
type StrategicInitiative struct {
	Initiative       string             `json:"initiative" yaml:"initiative"`
	Priority         Priority           `json:"priority" yaml:"priority"`
	BusinessProblems []string           `json:"business_problems" yaml:"business_problems"`
	ExpectedOutcomes []string           `json:"expected_outcomes" yaml:"expected_outcomes"`
	SuccessMetrics   []string           `json:"success_metrics" yaml:"success_metrics"`
	Process          *ProcessMetrics    `json:"process_metrics,omitempty" yaml:"process_metrics,omitempty"`
	Investment       *InvestmentMetrics `json:"investment_metrics,omitempty" yaml:"investment_metrics,omitempty"`
}

// Priority is the initiative's priority tier.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsHigh() bool {
	return strings.EqualFold(string(p), string(PriorityHigh))
}

// ProcessMetrics quantifies the process an initiative targets. Used for the
// fallback ROI projection.
type ProcessMetrics struct {
	CurrentAnnualCost float64 `json:"current_annual_cost" yaml:"current_annual_cost"`
	CycleTimeDays     float64 `json:"cycle_time_days" yaml:"cycle_time_days"`
	ErrorRatePercent  float64 `json:"error_rate_percent" yaml:"error_rate_percent"`
	LaborHoursPerWeek float64 `json:"labor_hours_per_week" yaml:"labor_hours_per_week"`
}

// InvestmentMetrics quantifies the planned spend for an initiative.
type InvestmentMetrics struct {
	PlannedInvestment float64 `json:"planned_investment" yaml:"planned_investment"`
	TimeHorizonMonths int     `json:"time_horizon_months" yaml:"time_horizon_months"`
}

// SystemApplication is one entry in the company's systems inventory.
type SystemApplication struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Criticality string `json:"criticality" yaml:"criticality"`
}

// EmployeeCountValue parses the employee-count band into a number. Bands may
// be plain ("1500"), formatted ("1,500", "5000+"), or ranged ("250-1000");
// ranges resolve to their upper bound. Unparseable bands yield 0.
func (p *Profile) EmployeeCountValue() int {
	max := 0
	for _, token := range numericTokens(p.EmployeeCount) {
		if token > max {
			max = token
		}
	}
	return max
}

func numericTokens(band string) []int {
	cleaned := strings.ReplaceAll(band, ",", "")
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r < '0' || r > '9'
	})

	tokens := make([]int, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			tokens = append(tokens, n)
		}
	}
	return tokens
}

// SystemNames returns the names of all listed systems, in inventory order.
func (p *Profile) SystemNames() []string {
	names := make([]string, 0, len(p.Systems))
	for _, s := range p.Systems {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// BusinessProblems flattens the business problems across all initiatives.
func (p *Profile) BusinessProblems() []string {
	var problems []string
	for _, init := range p.Initiatives {
		problems = append(problems, init.BusinessProblems...)
	}
	return problems
}

// SuccessMetrics flattens the success metrics across all initiatives.
func (p *Profile) SuccessMetrics() []string {
	var metrics []string
	for _, init := range p.Initiatives {
		metrics = append(metrics, init.SuccessMetrics...)
	}
	return metrics
}

// HighPriorityInitiatives returns the names of initiatives flagged High.
func (p *Profile) HighPriorityInitiatives() []string {
	var names []string
	for _, init := range p.Initiatives {
		if init.Priority.IsHigh() {
			names = append(names, init.Initiative)
		}
	}
	return names
}
