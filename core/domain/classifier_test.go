package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywordMatches(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name        string
		category    string
		description string
		industry    string
		want        BusinessDomain
	}{
		{
			name:        "procurement from rfp keyword",
			description: "Automate RFP response drafting for the sourcing team",
			want:        DomainProcurement,
		},
		{
			name:        "healthcare from patient keyword",
			category:    "Patient Intake",
			description: "Reduce patient intake processing time",
			want:        DomainHealthcare,
		},
		{
			name:        "financial services from underwriting",
			description: "Speed up loan underwriting decisions",
			want:        DomainFinancialServices,
		},
		{
			name:     "industry alone is a signal",
			industry: "Manufacturing",
			want:     DomainManufacturing,
		},
		{
			name:        "technology from devops",
			description: "streamline devops incident triage",
			want:        DomainTechnology,
		},
		{
			name:        "no match falls back to generic",
			description: "improve overall happiness",
			want:        DomainGeneric,
		},
		{
			name: "empty input falls back to generic",
			want: DomainGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.category, tt.description, tt.industry)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	c := NewClassifier()

	// Both procurement and financial-services keywords present; procurement
	// is declared first.
	got := c.Classify("", "vendor contract for the banking division", "")
	assert.Equal(t, DomainProcurement, got)
}

func TestClassifyWordBoundaries(t *testing.T) {
	c := NewClassifier()

	// "rapid" contains "api" as a substring but must not match it.
	assert.Equal(t, DomainGeneric, c.Classify("", "rapid growth in headcount", ""))
	assert.Equal(t, DomainTechnology, c.Classify("", "expose a public api", ""))
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()

	first := c.Classify("Ops", "manual invoice matching against purchase order data", "Retail")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify("Ops", "manual invoice matching against purchase order data", "Retail"))
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t,
		c.Classify("", "PROCUREMENT overhaul", ""),
		c.Classify("", "procurement overhaul", ""))
}
