package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/planforge/core/pattern"
)

func scoringPlan(t *testing.T) (*GeneratedPlan, pattern.Record) {
	t.Helper()
	rec, ok := pattern.NewRegistry().Get(pattern.ManagerWorkers)
	require.True(t, ok)

	plan := &GeneratedPlan{
		BusinessObjective: "Cut claims processing cycle time in half while holding error rates flat",
		DigitalTeam: []DigitalTeamMember{
			{Role: "manager"}, {Role: "intake"}, {Role: "matching"}, {Role: "exceptions"},
		},
		HumanCheckpoints: make([]HumanCheckpoint, RequiredCheckpoints),
		Timeline: Timeline{
			Phases: []TimelinePhase{
				{Phase: "crawl"}, {Phase: "walk"}, {Phase: "run"},
			},
		},
		KPIImprovements: make([]KPIImprovement, MinKPIs),
		ROI:             &ROIProjection{ROIPercent: 40},
	}
	return plan, rec
}

func TestScoreFullPlanCapsAt100(t *testing.T) {
	plan, rec := scoringPlan(t)

	// All contributions sum past the cap; the score clamps.
	assert.Equal(t, 100, Score(plan, rec))
}

func TestScoreContributions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratedPlan)
		want   int
	}{
		{
			name:   "short objective loses objective points",
			mutate: func(p *GeneratedPlan) { p.BusinessObjective = "short" },
			want:   85,
		},
		{
			name:   "missing ROI loses roi points",
			mutate: func(p *GeneratedPlan) { p.ROI = nil },
			want:   95,
		},
		{
			name: "duplicate roles lose distinct bonus",
			mutate: func(p *GeneratedPlan) {
				p.DigitalTeam[1].Role = p.DigitalTeam[0].Role
			},
			want: 95,
		},
		{
			name: "out-of-order phases lose order bonus",
			mutate: func(p *GeneratedPlan) {
				p.BusinessObjective = "short"
				p.Timeline.Phases[0].Phase = "walk"
				p.Timeline.Phases[1].Phase = "crawl"
			},
			want: 80,
		},
		{
			name: "wrong team size loses team points entirely",
			mutate: func(p *GeneratedPlan) {
				p.DigitalTeam = p.DigitalTeam[:3]
			},
			want: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, rec := scoringPlan(t)
			tt.mutate(plan)
			assert.Equal(t, tt.want, Score(plan, rec))
		})
	}
}

func TestScoreRange(t *testing.T) {
	_, rec := scoringPlan(t)

	assert.Equal(t, 0, Score(nil, rec))
	assert.Equal(t, 0, Score(&GeneratedPlan{}, pattern.Record{AgentCount: 1}))

	full, _ := scoringPlan(t)
	score := Score(full, rec)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}
