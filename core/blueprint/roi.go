package blueprint

import (
	"fmt"
	"math"

	"github.com/veltaire/planforge/core/profile"
)

const (
	// assumedEfficiencyGain is the fraction of current process cost an agent
	// deployment is assumed to recover annually when computing the fallback
	// projection.
	assumedEfficiencyGain = 0.30

	defaultHorizonMonths = 24
	monthsPerYear        = 12
)

// ProjectROI computes the fallback ROI projection from an initiative's
// process and investment metrics. Returns nil when the initiative carries no
// usable numbers; the blueprint then simply has no projection unless the
// model supplied one.
func ProjectROI(initiative *profile.StrategicInitiative) *ROIProjection {
	if initiative == nil || initiative.Process == nil {
		return nil
	}

	annualCost := initiative.Process.CurrentAnnualCost
	if annualCost <= 0 {
		return nil
	}

	annualSavings := annualCost * assumedEfficiencyGain

	investment := 0.0
	horizonMonths := defaultHorizonMonths
	if initiative.Investment != nil {
		investment = initiative.Investment.PlannedInvestment
		if initiative.Investment.TimeHorizonMonths > 0 {
			horizonMonths = initiative.Investment.TimeHorizonMonths
		}
	}

	factors := []string{
		fmt.Sprintf("Assumes %.0f%% efficiency gain on current annual process cost", assumedEfficiencyGain*100),
		fmt.Sprintf("Computed over a %d-month horizon", horizonMonths),
	}

	if investment <= 0 {
		// Without a planned investment the ratio is undefined; report the
		// savings run-rate alone at low confidence.
		return &ROIProjection{
			ROIPercent:        0,
			PaybackMonths:     0,
			ConfidenceLevel:   "low",
			ConfidenceFactors: append(factors, "No planned investment recorded; ROI ratio not computable"),
		}
	}

	horizonSavings := annualSavings * float64(horizonMonths) / monthsPerYear
	roiPercent := (horizonSavings - investment) / investment * 100
	paybackMonths := investment / (annualSavings / monthsPerYear)

	confidence := "medium"
	if initiative.Process.CycleTimeDays > 0 && initiative.Process.ErrorRatePercent > 0 {
		confidence = "high"
		factors = append(factors, "Cycle time and error rate baselines present")
	}

	return &ROIProjection{
		ROIPercent:        round1(roiPercent),
		PaybackMonths:     round1(paybackMonths),
		ConfidenceLevel:   confidence,
		ConfidenceFactors: factors,
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
