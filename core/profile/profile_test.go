package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCountValue(t *testing.T) {
	tests := []struct {
		band string
		want int
	}{
		{"1500", 1500},
		{"1,500", 1500},
		{"5000+", 5000},
		{"250-1000", 1000},
		{"approx. 300 people", 300},
		{"unknown", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			p := &Profile{EmployeeCount: tt.band}
			assert.Equal(t, tt.want, p.EmployeeCountValue())
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
company_name: Meridian Health Partners
industry: Healthcare
employee_count: "1,500"
strategic_initiatives:
  - initiative: Claims automation
    priority: High
    business_problems:
      - manual claims process is error-prone
    success_metrics:
      - claim denial rate below 4%
    process_metrics:
      current_annual_cost: 2400000
      cycle_time_days: 12
      error_rate_percent: 8.5
    investment_metrics:
      planned_investment: 500000
      time_horizon_months: 18
  - initiative: Patient scheduling
    priority: Medium
    business_problems:
      - long patient wait times
systems:
  - name: Epic
    category: EHR
    criticality: high
  - name: Salesforce
    category: CRM
    criticality: medium
`)

	p, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Meridian Health Partners", p.CompanyName)
	assert.Equal(t, 1500, p.EmployeeCountValue())
	require.Len(t, p.Initiatives, 2)

	first := p.Initiatives[0]
	assert.True(t, first.Priority.IsHigh())
	require.NotNil(t, first.Process)
	assert.Equal(t, 2400000.0, first.Process.CurrentAnnualCost)
	require.NotNil(t, first.Investment)
	assert.Equal(t, 18, first.Investment.TimeHorizonMonths)

	assert.False(t, p.Initiatives[1].Priority.IsHigh())
	assert.Nil(t, p.Initiatives[1].Process)

	assert.Equal(t, []string{"Epic", "Salesforce"}, p.SystemNames())
	assert.Equal(t, []string{
		"manual claims process is error-prone",
		"long patient wait times",
	}, p.BusinessProblems())
	assert.Equal(t, []string{"Claims automation"}, p.HighPriorityInitiatives())
}

func TestPriorityIsHighCaseInsensitive(t *testing.T) {
	assert.True(t, Priority("high").IsHigh())
	assert.True(t, Priority("HIGH").IsHigh())
	assert.False(t, Priority("highest").IsHigh())
	assert.False(t, Priority("").IsHigh())
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("company_name: [unclosed"))
	assert.Error(t, err)
}
