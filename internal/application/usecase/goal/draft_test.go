package goal

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

func TestParseDraft(t *testing.T) {
	manual := false

	tests := []struct {
		name      string
		raw       RawGoalDraft
		wantField string
		check     func(t *testing.T, d entity.GoalDraft)
	}{
		{
			name: "applies form defaults",
			raw:  RawGoalDraft{Name: "  New Bike ", TargetAmount: "1200", Deadline: "2027-05-01"},
			check: func(t *testing.T, d entity.GoalDraft) {
				if d.Name != "New Bike" {
					t.Errorf("expected trimmed name, got %q", d.Name)
				}
				if d.Category != entity.GoalCategorySavings {
					t.Errorf("expected savings, got %s", d.Category)
				}
				if d.Priority != entity.GoalPriorityMedium {
					t.Errorf("expected medium, got %s", d.Priority)
				}
				if !d.Automate {
					t.Error("expected automate to default to true")
				}
				if !d.CurrentAmount.IsZero() || !d.MonthlyContribution.IsZero() {
					t.Errorf("expected zero optional amounts, got %s and %s", d.CurrentAmount, d.MonthlyContribution)
				}
			},
		},
		{
			name: "keeps explicit values",
			raw: RawGoalDraft{
				Name: "Pay Card", Category: "Debt", TargetAmount: "3000.50", CurrentAmount: "120.25",
				Deadline: "2027-01-31", MonthlyContribution: "250", Priority: "HIGH", Automate: &manual,
			},
			check: func(t *testing.T, d entity.GoalDraft) {
				if d.Category != entity.GoalCategoryDebt || d.Priority != entity.GoalPriorityHigh {
					t.Errorf("expected debt/high, got %s/%s", d.Category, d.Priority)
				}
				if !d.TargetAmount.Equal(decimal.RequireFromString("3000.50")) {
					t.Errorf("expected target 3000.50, got %s", d.TargetAmount)
				}
				if d.Automate {
					t.Error("expected automate false")
				}
				if entity.FormatDate(d.Deadline) != "2027-01-31" {
					t.Errorf("expected deadline 2027-01-31, got %s", entity.FormatDate(d.Deadline))
				}
			},
		},
		{name: "missing target", raw: RawGoalDraft{Name: "A", Deadline: "2027-01-01"}, wantField: FieldTargetAmount},
		{name: "malformed target", raw: RawGoalDraft{Name: "A", TargetAmount: "lots", Deadline: "2027-01-01"}, wantField: FieldTargetAmount},
		{name: "malformed current", raw: RawGoalDraft{Name: "A", TargetAmount: "10", CurrentAmount: "1,5", Deadline: "2027-01-01"}, wantField: FieldCurrentAmount},
		{name: "malformed contribution", raw: RawGoalDraft{Name: "A", TargetAmount: "10", MonthlyContribution: "x", Deadline: "2027-01-01"}, wantField: FieldMonthlyContribution},
		{name: "missing deadline", raw: RawGoalDraft{Name: "A", TargetAmount: "10"}, wantField: FieldDeadline},
		{name: "malformed deadline", raw: RawGoalDraft{Name: "A", TargetAmount: "10", Deadline: "31/12/2027"}, wantField: FieldDeadline},
		{name: "empty name", raw: RawGoalDraft{Name: " ", TargetAmount: "10", Deadline: "2027-01-01"}, wantField: FieldName},
		{name: "unknown category", raw: RawGoalDraft{Name: "A", Category: "travel", TargetAmount: "10", Deadline: "2027-01-01"}, wantField: FieldCategory},
		{name: "unknown priority", raw: RawGoalDraft{Name: "A", Priority: "asap", TargetAmount: "10", Deadline: "2027-01-01"}, wantField: FieldPriority},
		{name: "negative target", raw: RawGoalDraft{Name: "A", TargetAmount: "-10", Deadline: "2027-01-01"}, wantField: FieldTargetAmount},
		{name: "huge exponent target", raw: RawGoalDraft{Name: "A", TargetAmount: "1e50000000", Deadline: "2027-01-01"}, wantField: FieldTargetAmount},
		{name: "target above maximum", raw: RawGoalDraft{Name: "A", TargetAmount: "1000000000000000", Deadline: "2027-01-01"}, wantField: FieldTargetAmount},
		{name: "tiny exponent current", raw: RawGoalDraft{Name: "A", TargetAmount: "10", CurrentAmount: "1e-999999999", Deadline: "2027-01-01"}, wantField: FieldCurrentAmount},
		{name: "contribution too precise", raw: RawGoalDraft{Name: "A", TargetAmount: "10", MonthlyContribution: "0.123456789", Deadline: "2027-01-01"}, wantField: FieldMonthlyContribution},
		{
			name: "accepts largest amount",
			raw:  RawGoalDraft{Name: "A", TargetAmount: "999999999999999.99999999", Deadline: "2027-01-01"},
			check: func(t *testing.T, d entity.GoalDraft) {
				if !d.TargetAmount.Equal(decimal.RequireFromString("999999999999999.99999999")) {
					t.Errorf("expected largest target kept, got %s", d.TargetAmount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := ParseDraft(tt.raw)

			if tt.wantField != "" {
				var validationErr *domainerror.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if validationErr.Field != tt.wantField {
					t.Errorf("expected field %s, got %s", tt.wantField, validationErr.Field)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, draft)
		})
	}
}
