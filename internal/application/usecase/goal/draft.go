package goal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// Draft field names reported in validation errors.
const (
	FieldName                = "name"
	FieldCategory            = "category"
	FieldTargetAmount        = "target_amount"
	FieldCurrentAmount       = "current_amount"
	FieldDeadline            = "deadline"
	FieldMonthlyContribution = "monthly_contribution"
	FieldPriority            = "priority"
)

// RawGoalDraft holds unparsed goal form input.
// Empty Category and Priority fall back to the form defaults; a nil
// Automate means true.
type RawGoalDraft struct {
	Name                string
	Category            string
	TargetAmount        string
	CurrentAmount       string
	Deadline            string
	MonthlyContribution string
	Priority            string
	Automate            *bool
}

// ParseDraft converts raw input into a draft. Malformed values are rejected
// instead of being coerced to zero.
func ParseDraft(raw RawGoalDraft) (entity.GoalDraft, error) {
	draft := entity.GoalDraft{
		Name:     strings.TrimSpace(raw.Name),
		Category: entity.GoalCategorySavings,
		Priority: entity.GoalPriorityMedium,
		Automate: true,
	}

	if c := strings.TrimSpace(raw.Category); c != "" {
		draft.Category = entity.GoalCategory(strings.ToLower(c))
	}
	if p := strings.TrimSpace(raw.Priority); p != "" {
		draft.Priority = entity.GoalPriority(strings.ToLower(p))
	}
	if raw.Automate != nil {
		draft.Automate = *raw.Automate
	}

	var err error
	if draft.TargetAmount, err = parseAmount(FieldTargetAmount, raw.TargetAmount, true); err != nil {
		return entity.GoalDraft{}, err
	}
	if draft.CurrentAmount, err = parseAmount(FieldCurrentAmount, raw.CurrentAmount, false); err != nil {
		return entity.GoalDraft{}, err
	}
	if draft.MonthlyContribution, err = parseAmount(FieldMonthlyContribution, raw.MonthlyContribution, false); err != nil {
		return entity.GoalDraft{}, err
	}

	deadline := strings.TrimSpace(raw.Deadline)
	if deadline == "" {
		return entity.GoalDraft{}, domainerror.NewValidationError(FieldDeadline, "is required")
	}
	if draft.Deadline, err = entity.ParseDate(deadline); err != nil {
		return entity.GoalDraft{}, domainerror.NewValidationError(FieldDeadline, "must be a date in YYYY-MM-DD format")
	}

	if err := validateDraft(draft); err != nil {
		return entity.GoalDraft{}, err
	}
	return draft, nil
}

// parseAmount parses a monetary amount. Optional amounts default to zero
// when empty.
func parseAmount(field, value string, required bool) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return decimal.Zero, domainerror.NewValidationError(field, "is required")
		}
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domainerror.NewValidationError(field, "must be a number")
	}
	if err := entity.CheckAmountBounds(amount); err != nil {
		return decimal.Zero, domainerror.NewValidationError(field, err.Error())
	}
	return amount, nil
}

func validateAmount(field string, amount decimal.Decimal) error {
	if err := entity.CheckAmountBounds(amount); err != nil {
		return domainerror.NewValidationError(field, err.Error())
	}
	if amount.IsNegative() {
		return domainerror.NewValidationError(field, "must not be negative")
	}
	return nil
}

// validateDraft checks the invariants every stored goal must satisfy.
func validateDraft(draft entity.GoalDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return domainerror.NewValidationError(FieldName, "must not be empty")
	}
	if !draft.Category.IsValid() {
		return domainerror.NewValidationError(FieldCategory,
			"must be one of savings, investment, debt, emergency, retirement, custom")
	}
	if err := validateAmount(FieldTargetAmount, draft.TargetAmount); err != nil {
		return err
	}
	if err := validateAmount(FieldCurrentAmount, draft.CurrentAmount); err != nil {
		return err
	}
	if err := validateAmount(FieldMonthlyContribution, draft.MonthlyContribution); err != nil {
		return err
	}
	if draft.Deadline.IsZero() {
		return domainerror.NewValidationError(FieldDeadline, "is required")
	}
	if !draft.Priority.IsValid() {
		return domainerror.NewValidationError(FieldPriority, "must be one of high, medium, low")
	}
	return nil
}
