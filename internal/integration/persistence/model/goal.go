// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GoalRecord is the persisted shape of a goal inside the stored JSON array.
// Amounts are JSON numbers and dates are YYYY-MM-DD strings.
type GoalRecord struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Category            string      `json:"category"`
	TargetAmount        json.Number `json:"targetAmount"`
	CurrentAmount       json.Number `json:"currentAmount"`
	Deadline            string      `json:"deadline"`
	MonthlyContribution json.Number `json:"monthlyContribution"`
	Priority            string      `json:"priority"`
	Automate            bool        `json:"automate"`
	CreatedAt           string      `json:"createdAt"`
}

// ToEntity converts a GoalRecord to a domain Goal entity. Records that break
// the goal field rules are rejected.
func (r *GoalRecord) ToEntity() (*entity.Goal, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("goal %s: empty name", r.ID)
	}
	category := entity.GoalCategory(r.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("goal %s: unknown category %q", r.ID, r.Category)
	}
	priority := entity.GoalPriority(r.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("goal %s: unknown priority %q", r.ID, r.Priority)
	}

	target, err := decodeAmount("targetAmount", r.TargetAmount)
	if err != nil {
		return nil, err
	}
	current, err := decodeAmount("currentAmount", r.CurrentAmount)
	if err != nil {
		return nil, err
	}
	monthly, err := decodeAmount("monthlyContribution", r.MonthlyContribution)
	if err != nil {
		return nil, err
	}

	deadline, err := entity.ParseDate(r.Deadline)
	if err != nil {
		return nil, fmt.Errorf("goal %s: invalid deadline %q: %w", r.ID, r.Deadline, err)
	}
	createdAt, err := entity.ParseDate(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("goal %s: invalid createdAt %q: %w", r.ID, r.CreatedAt, err)
	}

	return &entity.Goal{
		ID:                  r.ID,
		Name:                r.Name,
		Category:            category,
		TargetAmount:        target,
		CurrentAmount:       current,
		Deadline:            deadline,
		MonthlyContribution: monthly,
		Priority:            priority,
		Automate:            r.Automate,
		CreatedAt:           createdAt,
	}, nil
}

// GoalRecordFromEntity creates a GoalRecord from a domain Goal entity.
func GoalRecordFromEntity(goal *entity.Goal) GoalRecord {
	return GoalRecord{
		ID:                  goal.ID,
		Name:                goal.Name,
		Category:            string(goal.Category),
		TargetAmount:        json.Number(goal.TargetAmount.String()),
		CurrentAmount:       json.Number(goal.CurrentAmount.String()),
		Deadline:            entity.FormatDate(goal.Deadline),
		MonthlyContribution: json.Number(goal.MonthlyContribution.String()),
		Priority:            string(goal.Priority),
		Automate:            goal.Automate,
		CreatedAt:           entity.FormatDate(goal.CreatedAt),
	}
}

func decodeAmount(field string, value json.Number) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if err := entity.CheckAmountBounds(amount); err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", field, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid %s %s: must not be negative", field, amount)
	}
	return amount, nil
}
