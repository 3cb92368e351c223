package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newTestGoal(target, current, monthly string, deadline time.Time) *Goal {
	return NewGoal("goal-1", GoalDraft{
		Name:                "Test Goal",
		Category:            GoalCategorySavings,
		TargetAmount:        dec(target),
		CurrentAmount:       dec(current),
		Deadline:            deadline,
		MonthlyContribution: dec(monthly),
		Priority:            GoalPriorityMedium,
	}, testNow)
}

func TestGoal_ProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		current  string
		expected string
	}{
		{name: "partial progress", target: "15000", current: "8500", expected: "56.67"},
		{name: "no progress", target: "5000", current: "0", expected: "0"},
		{name: "exactly complete", target: "5000", current: "5000", expected: "100"},
		{name: "over-achievement is capped", target: "5000", current: "7500", expected: "100"},
		{name: "zero target counts as complete", target: "0", current: "0", expected: "100"},
		{name: "zero target with balance", target: "0", current: "250", expected: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := newTestGoal(tt.target, tt.current, "0", testNow)
			got := goal.ProgressPercent().Round(2)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected progress %s, got %s", tt.expected, got)
			}
			if got.IsNegative() || got.GreaterThan(dec("100")) {
				t.Errorf("progress %s out of [0, 100]", got)
			}
		})
	}
}

func TestGoal_Metrics_EmergencyFundScenario(t *testing.T) {
	goal := newTestGoal("15000", "8500", "500", testNow.AddDate(0, 0, 160))

	metrics := goal.Metrics(testNow)

	if !metrics.ProgressPercent.Round(2).Equal(dec("56.67")) {
		t.Errorf("expected progress 56.67, got %s", metrics.ProgressPercent.Round(2))
	}
	if metrics.DaysRemaining != 160 {
		t.Errorf("expected 160 days remaining, got %d", metrics.DaysRemaining)
	}
	if metrics.MonthsRemaining != 6 {
		t.Errorf("expected 6 months remaining, got %d", metrics.MonthsRemaining)
	}
	if !metrics.RequiredMonthly.Round(2).Equal(dec("1083.33")) {
		t.Errorf("expected required monthly 1083.33, got %s", metrics.RequiredMonthly.Round(2))
	}
	if metrics.Pacing != GoalPacingBehindPace {
		t.Errorf("expected pacing %s, got %s", GoalPacingBehindPace, metrics.Pacing)
	}
	if !metrics.MonthlyShortfall.Equal(dec("584")) {
		t.Errorf("expected shortfall 584, got %s", metrics.MonthlyShortfall)
	}
	if metrics.Urgency != GoalUrgencyNormal {
		t.Errorf("expected urgency %s, got %s", GoalUrgencyNormal, metrics.Urgency)
	}
	if metrics.Overdue || metrics.Completed {
		t.Errorf("expected goal to be neither overdue nor completed, got %+v", metrics)
	}
}

func TestGoal_Metrics_Pacing(t *testing.T) {
	t.Run("contribution covering requirement is on track", func(t *testing.T) {
		goal := newTestGoal("1200", "0", "100", testNow.AddDate(0, 0, 360))
		metrics := goal.Metrics(testNow)
		if metrics.MonthsRemaining != 12 {
			t.Fatalf("expected 12 months, got %d", metrics.MonthsRemaining)
		}
		if metrics.Pacing != GoalPacingOnTrack {
			t.Errorf("expected on track, got %s", metrics.Pacing)
		}
		if !metrics.MonthlyShortfall.IsZero() {
			t.Errorf("expected zero shortfall, got %s", metrics.MonthlyShortfall)
		}
	})

	t.Run("over-funded goal requires nothing", func(t *testing.T) {
		goal := newTestGoal("1000", "1500", "0", testNow.AddDate(0, 0, 90))
		metrics := goal.Metrics(testNow)
		if !metrics.RequiredMonthly.IsZero() {
			t.Errorf("expected zero required monthly, got %s", metrics.RequiredMonthly)
		}
		if !metrics.RemainingAmount.IsZero() {
			t.Errorf("expected zero remaining, got %s", metrics.RemainingAmount)
		}
		if metrics.Pacing != GoalPacingOnTrack {
			t.Errorf("expected on track, got %s", metrics.Pacing)
		}
		if !metrics.Completed {
			t.Error("expected completed goal")
		}
	})

	t.Run("overdue goal owes the full remaining amount", func(t *testing.T) {
		goal := newTestGoal("8000", "5200", "400", testNow.AddDate(0, 0, -10))
		metrics := goal.Metrics(testNow)
		if metrics.DaysRemaining != -10 {
			t.Errorf("expected -10 days, got %d", metrics.DaysRemaining)
		}
		if metrics.MonthsRemaining != 0 {
			t.Errorf("expected 0 months, got %d", metrics.MonthsRemaining)
		}
		if !metrics.RequiredMonthly.Equal(dec("2800")) {
			t.Errorf("expected required 2800, got %s", metrics.RequiredMonthly)
		}
		if !metrics.Overdue {
			t.Error("expected overdue goal")
		}
		if metrics.Urgency != GoalUrgencyCritical {
			t.Errorf("expected critical urgency, got %s", metrics.Urgency)
		}
	})
}

func TestDaysUntil(t *testing.T) {
	deadline := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{name: "partial day rounds up", now: time.Date(2026, time.October, 14, 15, 0, 0, 0, time.UTC), expected: 1},
		{name: "exact day", now: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), expected: 1},
		{name: "deadline day", now: deadline, expected: 0},
		{name: "past deadline", now: time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(deadline, tt.now); got != tt.expected {
				t.Errorf("expected %d days, got %d", tt.expected, got)
			}
		})
	}
}

func TestMonthsRemaining(t *testing.T) {
	tests := []struct {
		days     int
		expected int
	}{
		{days: -45, expected: 0},
		{days: 0, expected: 0},
		{days: 1, expected: 1},
		{days: 30, expected: 1},
		{days: 31, expected: 2},
		{days: 160, expected: 6},
	}

	for _, tt := range tests {
		if got := MonthsRemaining(tt.days); got != tt.expected {
			t.Errorf("MonthsRemaining(%d): expected %d, got %d", tt.days, tt.expected, got)
		}
	}
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		days     int
		expected GoalUrgency
	}{
		{days: -3, expected: GoalUrgencyCritical},
		{days: 29, expected: GoalUrgencyCritical},
		{days: 30, expected: GoalUrgencyWarning},
		{days: 89, expected: GoalUrgencyWarning},
		{days: 90, expected: GoalUrgencyNormal},
	}

	for _, tt := range tests {
		if got := UrgencyFor(tt.days); got != tt.expected {
			t.Errorf("UrgencyFor(%d): expected %s, got %s", tt.days, tt.expected, got)
		}
	}
}

func TestSuggestedMonthly(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		current  string
		deadline time.Time
		expected string
	}{
		{name: "spread over months and rounded up", target: "15000", current: "8500", deadline: testNow.AddDate(0, 0, 160), expected: "1084"},
		{name: "past deadline counts one month", target: "1000", current: "400", deadline: testNow.AddDate(0, 0, -20), expected: "600"},
		{name: "reached target suggests nothing", target: "1000", current: "1200", deadline: testNow.AddDate(0, 0, 60), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestedMonthly(dec(tt.target), dec(tt.current), tt.deadline, testNow)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected suggestion %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGoal_ApplyKeepsIdentity(t *testing.T) {
	goal := newTestGoal("100", "10", "5", testNow.AddDate(0, 1, 0))
	createdAt := goal.CreatedAt

	goal.Apply(GoalDraft{
		Name:         "Renamed",
		Category:     GoalCategoryDebt,
		TargetAmount: dec("200"),
		Deadline:     time.Date(2027, time.January, 1, 13, 45, 0, 0, time.UTC),
		Priority:     GoalPriorityHigh,
	})

	if goal.ID != "goal-1" {
		t.Errorf("expected id to stay goal-1, got %s", goal.ID)
	}
	if !goal.CreatedAt.Equal(createdAt) {
		t.Errorf("expected createdAt %s, got %s", createdAt, goal.CreatedAt)
	}
	if FormatDate(goal.Deadline) != "2027-01-01" || goal.Deadline.Hour() != 0 {
		t.Errorf("expected deadline truncated to 2027-01-01, got %s", goal.Deadline)
	}
	if goal.Name != "Renamed" || goal.Category != GoalCategoryDebt {
		t.Errorf("expected mutable fields replaced, got %+v", goal)
	}
}
