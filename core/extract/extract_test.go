package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltaire/planforge/core/profile"
)

func testProfile(employees string, systems int, highPriority int, industry string) *profile.Profile {
	p := &profile.Profile{
		CompanyName:   "Test Co",
		Industry:      industry,
		EmployeeCount: employees,
	}
	for i := 0; i < systems; i++ {
		p.Systems = append(p.Systems, profile.SystemApplication{Name: "System"})
	}
	for i := 0; i < highPriority; i++ {
		p.Initiatives = append(p.Initiatives, profile.StrategicInitiative{
			Initiative: "Initiative",
			Priority:   profile.PriorityHigh,
		})
	}
	return p
}

func TestComplexityScore(t *testing.T) {
	tests := []struct {
		name         string
		employees    string
		systems      int
		highPriority int
		want         int
	}{
		{"large company with systems and initiatives", "1500", 6, 2, 80},
		{"mid company", "500", 2, 1, 35},
		{"small company", "100", 1, 0, 5},
		{"boundary 250 is small", "250", 0, 0, 0},
		{"boundary 1000 is mid", "1000", 0, 0, 15},
		{"score is capped", "5000", 10, 5, 100},
		{"empty profile", "", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile(tt.employees, tt.systems, tt.highPriority, "Technology")
			impl := ImplementationFor(p)
			assert.Equal(t, tt.want, impl.ComplexityScore)
		})
	}
}

func TestTimelineMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		employees string
		systems   int
		want      float64
	}{
		{"small company no systems", "100", 0, 1.0},
		{"mid company", "500", 0, 1.2},
		{"large company", "1500", 0, 1.5},
		{"systems add 10% each", "100", 3, 1.3},
		{"capped at 2.0", "1500", 6, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile(tt.employees, tt.systems, 0, "Technology")
			impl := ImplementationFor(p)
			assert.InDelta(t, tt.want, impl.TimelineMultiplier, 0.001)
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		name      string
		employees string
		industry  string
		want      RiskLevel
	}{
		{"small unregulated", "100", "Technology", RiskLow},
		{"mid unregulated", "500", "Technology", RiskMedium},
		{"large unregulated", "1500", "Technology", RiskHigh},
		{"small regulated escalates to medium", "100", "Healthcare", RiskMedium},
		{"mid regulated escalates to high", "500", "Financial Services", RiskHigh},
		{"large regulated stays high", "1500", "Healthcare", RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile(tt.employees, 0, 0, tt.industry)
			impl := ImplementationFor(p)
			assert.Equal(t, tt.want, impl.RiskLevel)
		})
	}
}

func TestChangeReadiness(t *testing.T) {
	unregulated := ImplementationFor(testProfile("500", 0, 0, "Retail"))
	assert.Equal(t, 50, unregulated.ChangeReadiness)

	regulated := ImplementationFor(testProfile("500", 0, 0, "Healthcare"))
	assert.Equal(t, 35, regulated.ChangeReadiness)
}

func TestImplementationForNilProfile(t *testing.T) {
	impl := ImplementationFor(nil)

	assert.Equal(t, 0, impl.ComplexityScore)
	assert.InDelta(t, 1.0, impl.TimelineMultiplier, 0.001)
	assert.Equal(t, RiskLow, impl.RiskLevel)
	assert.Equal(t, 50, impl.ChangeReadiness)
}

func TestIsRegulatedIndustry(t *testing.T) {
	assert.True(t, IsRegulatedIndustry("Healthcare"))
	assert.True(t, IsRegulatedIndustry("financial services"))
	assert.True(t, IsRegulatedIndustry("  Financial Services  "))
	assert.False(t, IsRegulatedIndustry("Technology"))
	assert.False(t, IsRegulatedIndustry(""))
}

func TestIndustryForFallback(t *testing.T) {
	known := IndustryFor("Healthcare")
	assert.Equal(t, "Healthcare", known.Industry)
	assert.Contains(t, known.Regulatory, "HIPAA")

	unknown := IndustryFor("Cryptozoology")
	assert.Equal(t, "Cryptozoology", unknown.Industry)
	assert.NotEmpty(t, unknown.TypicalKPIs, "generic record still carries KPIs")

	empty := IndustryFor("")
	assert.Equal(t, "General Business", empty.Industry)
}

func TestCompanyForConstraints(t *testing.T) {
	small := CompanyFor(testProfile("100", 0, 0, "Technology"))
	assert.NotEmpty(t, small.Constraints)

	large := CompanyFor(testProfile("2000", 0, 0, "Healthcare"))
	// Large and regulated each contribute constraints.
	assert.GreaterOrEqual(t, len(large.Constraints), 4)

	mid := CompanyFor(testProfile("500", 0, 0, "Technology"))
	assert.Empty(t, mid.Constraints)
}

func TestFromProfileNil(t *testing.T) {
	ctx := FromProfile(nil)

	assert.Equal(t, "General Business", ctx.Industry.Industry)
	assert.Empty(t, ctx.Company.SystemsInventory)
	assert.Equal(t, RiskLow, ctx.Implementation.RiskLevel)
}
