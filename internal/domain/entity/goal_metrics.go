package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalPacing classifies the committed contribution against the required one.
type GoalPacing string

const (
	GoalPacingOnTrack    GoalPacing = "on_track"
	GoalPacingBehindPace GoalPacing = "behind_pace"
)

// GoalUrgency classifies how close the deadline is.
type GoalUrgency string

const (
	GoalUrgencyCritical GoalUrgency = "critical"
	GoalUrgencyWarning  GoalUrgency = "warning"
	GoalUrgencyNormal   GoalUrgency = "normal"
)

const (
	daysPerMonth       = 30
	criticalWindowDays = 30
	warningWindowDays  = 90
	hoursPerDay        = 24
)

var hundred = decimal.NewFromInt(100)

// GoalMetrics holds the values derived from a goal at a given instant.
// They are never stored.
type GoalMetrics struct {
	ProgressPercent  decimal.Decimal
	Completed        bool
	DaysRemaining    int
	MonthsRemaining  int
	Overdue          bool
	Urgency          GoalUrgency
	RemainingAmount  decimal.Decimal
	RequiredMonthly  decimal.Decimal
	MonthlyShortfall decimal.Decimal
	Pacing           GoalPacing
}

// ProgressPercent returns current/target as a percentage capped at 100.
// A zero target counts as already complete.
func (g *Goal) ProgressPercent() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return hundred
	}
	percent := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// IsCompleted reports whether the current amount reached the target.
func (g *Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// RemainingAmount returns target minus current, floored at zero.
func (g *Goal) RemainingAmount() decimal.Decimal {
	return RemainingAmount(g.TargetAmount, g.CurrentAmount)
}

// Metrics computes the derived metrics of the goal relative to now.
func (g *Goal) Metrics(now time.Time) GoalMetrics {
	days := DaysUntil(g.Deadline, now)
	months := MonthsRemaining(days)
	remaining := g.RemainingAmount()
	required := RequiredMonthly(remaining, months)

	pacing := GoalPacingOnTrack
	if g.MonthlyContribution.LessThan(required) {
		pacing = GoalPacingBehindPace
	}

	shortfall := required.Sub(g.MonthlyContribution)
	if shortfall.IsPositive() {
		shortfall = shortfall.Ceil()
	} else {
		shortfall = decimal.Zero
	}

	return GoalMetrics{
		ProgressPercent:  g.ProgressPercent(),
		Completed:        g.IsCompleted(),
		DaysRemaining:    days,
		MonthsRemaining:  months,
		Overdue:          days <= 0,
		Urgency:          UrgencyFor(days),
		RemainingAmount:  remaining,
		RequiredMonthly:  required,
		MonthlyShortfall: shortfall,
		Pacing:           pacing,
	}
}

// DaysUntil returns the number of days from now to the deadline, rounded up.
// It is negative once the deadline has passed.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / hoursPerDay))
}

// MonthsRemaining converts remaining days into 30-day months, rounded up and
// floored at zero.
func MonthsRemaining(days int) int {
	months := int(math.Ceil(float64(days) / daysPerMonth))
	if months < 0 {
		return 0
	}
	return months
}

// RemainingAmount returns target minus current, floored at zero.
func RemainingAmount(target, current decimal.Decimal) decimal.Decimal {
	remaining := target.Sub(current)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RequiredMonthly spreads the remaining amount over the remaining months.
// With no months left the whole remaining amount is due now.
func RequiredMonthly(remaining decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return remaining
	}
	return remaining.Div(decimal.NewFromInt(int64(months)))
}

// UrgencyFor classifies the remaining days.
func UrgencyFor(days int) GoalUrgency {
	switch {
	case days < criticalWindowDays:
		return GoalUrgencyCritical
	case days < warningWindowDays:
		return GoalUrgencyWarning
	default:
		return GoalUrgencyNormal
	}
}

// SuggestedMonthly is the whole-unit contribution that reaches the target by
// the deadline, counting at least one month.
func SuggestedMonthly(target, current decimal.Decimal, deadline, now time.Time) decimal.Decimal {
	months := MonthsRemaining(DaysUntil(deadline, now))
	if months < 1 {
		months = 1
	}
	return RemainingAmount(target, current).Div(decimal.NewFromInt(int64(months))).Ceil()
}
