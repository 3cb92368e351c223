package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// GoalSummary aggregates metrics across the whole goal collection.
type GoalSummary struct {
	GoalCount              int
	CompletedCount         int
	RemainingCount         int
	AutomatedCount         int
	AutomatedPercent       int
	TotalTarget            decimal.Decimal
	TotalCurrent           decimal.Decimal
	OverallProgressPercent decimal.Decimal
	MonthlyRequiredTotal   decimal.Decimal
}

// SummarizeGoals computes the aggregate metrics for the given goals.
// MonthlyRequiredTotal sums committed contributions, not computed requirements.
func SummarizeGoals(goals []*Goal) GoalSummary {
	summary := GoalSummary{
		GoalCount:              len(goals),
		TotalTarget:            decimal.Zero,
		TotalCurrent:           decimal.Zero,
		OverallProgressPercent: decimal.Zero,
		MonthlyRequiredTotal:   decimal.Zero,
	}

	for _, g := range goals {
		summary.TotalTarget = summary.TotalTarget.Add(g.TargetAmount)
		summary.TotalCurrent = summary.TotalCurrent.Add(g.CurrentAmount)
		summary.MonthlyRequiredTotal = summary.MonthlyRequiredTotal.Add(g.MonthlyContribution)
		if g.IsCompleted() {
			summary.CompletedCount++
		}
		if g.Automate {
			summary.AutomatedCount++
		}
	}

	summary.RemainingCount = summary.GoalCount - summary.CompletedCount

	if summary.TotalTarget.IsPositive() {
		summary.OverallProgressPercent = summary.TotalCurrent.Div(summary.TotalTarget).Mul(hundred)
	}

	if summary.GoalCount > 0 {
		ratio := float64(summary.AutomatedCount) / float64(summary.GoalCount) * 100
		summary.AutomatedPercent = int(math.Round(ratio))
	}

	return summary
}
