package extract

import "github.com/veltaire/planforge/core/profile"

// RiskLevel grades implementation risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

const (
	complexityLargeCompany  = 30
	complexityMidCompany    = 15
	complexityPerSystem     = 5
	complexityPerInitiative = 10
	complexityCap           = 100

	timelineLargeFactor = 1.5
	timelineMidFactor   = 1.2
	timelinePerSystem   = 0.1
	timelineCap         = 2.0

	readinessBase          = 50
	readinessRegulatedDrop = 15
	readinessFloor         = 20
	readinessCeiling       = 100
)

// ImplementationContext is the numeric readiness assessment derived from the
// profile.
type ImplementationContext struct {
	ComplexityScore    int       `json:"complexity_score"`
	TimelineMultiplier float64   `json:"timeline_multiplier"`
	RiskLevel          RiskLevel `json:"risk_level"`
	ChangeReadiness    int       `json:"change_readiness"`
}

// ImplementationFor computes the implementation context. All formulas are
// deterministic in the profile's employee count, system count, high-priority
// initiative count, and regulated-industry membership.
func ImplementationFor(p *profile.Profile) ImplementationContext {
	if p == nil {
		return ImplementationContext{
			TimelineMultiplier: 1.0,
			RiskLevel:          RiskLow,
			ChangeReadiness:    readinessBase,
		}
	}

	employees := p.EmployeeCountValue()
	systems := len(p.Systems)
	highPriority := len(p.HighPriorityInitiatives())
	regulated := IsRegulatedIndustry(p.Industry)

	return ImplementationContext{
		ComplexityScore:    complexityScore(employees, systems, highPriority),
		TimelineMultiplier: timelineMultiplier(employees, systems),
		RiskLevel:          riskLevel(employees, regulated),
		ChangeReadiness:    changeReadiness(regulated),
	}
}

func complexityScore(employees, systems, highPriority int) int {
	score := 0
	if employees > largeCompanyMin {
		score += complexityLargeCompany
	} else if employees > smallCompanyMax {
		score += complexityMidCompany
	}
	score += systems * complexityPerSystem
	score += highPriority * complexityPerInitiative

	if score > complexityCap {
		return complexityCap
	}
	return score
}

func timelineMultiplier(employees, systems int) float64 {
	multiplier := 1.0
	if employees > largeCompanyMin {
		multiplier *= timelineLargeFactor
	} else if employees > smallCompanyMax {
		multiplier *= timelineMidFactor
	}
	multiplier *= 1.0 + float64(systems)*timelinePerSystem

	if multiplier > timelineCap {
		return timelineCap
	}
	return multiplier
}

func riskLevel(employees int, regulated bool) RiskLevel {
	risk := RiskLow
	if employees > largeCompanyMin {
		risk = RiskHigh
	} else if employees > smallCompanyMax {
		risk = RiskMedium
	}

	if regulated {
		// Regulated profiles are never below medium, and an already-medium
		// assessment escalates.
		switch risk {
		case RiskLow:
			risk = RiskMedium
		case RiskMedium:
			risk = RiskHigh
		}
	}
	return risk
}

func changeReadiness(regulated bool) int {
	readiness := readinessBase
	if regulated {
		readiness -= readinessRegulatedDrop
	}

	if readiness < readinessFloor {
		return readinessFloor
	}
	if readiness > readinessCeiling {
		return readinessCeiling
	}
	return readiness
}
