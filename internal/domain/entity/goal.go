// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory represents the kind of financial goal.
type GoalCategory string

const (
	GoalCategorySavings    GoalCategory = "savings"
	GoalCategoryInvestment GoalCategory = "investment"
	GoalCategoryDebt       GoalCategory = "debt"
	GoalCategoryEmergency  GoalCategory = "emergency"
	GoalCategoryRetirement GoalCategory = "retirement"
	GoalCategoryCustom     GoalCategory = "custom"
)

// GoalCategories lists every category in display order.
var GoalCategories = []GoalCategory{
	GoalCategorySavings,
	GoalCategoryInvestment,
	GoalCategoryDebt,
	GoalCategoryEmergency,
	GoalCategoryRetirement,
	GoalCategoryCustom,
}

// IsValid reports whether the category belongs to the closed set.
func (c GoalCategory) IsValid() bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

// GoalPriority represents the user-assigned priority of a goal.
// It only affects sort ordering.
type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityLow    GoalPriority = "low"
)

// IsValid reports whether the priority belongs to the closed set.
func (p GoalPriority) IsValid() bool {
	return p == GoalPriorityHigh || p == GoalPriorityMedium || p == GoalPriorityLow
}

// Rank orders priorities severity-first: high < medium < low.
func (p GoalPriority) Rank() int {
	switch p {
	case GoalPriorityHigh:
		return 0
	case GoalPriorityMedium:
		return 1
	case GoalPriorityLow:
		return 2
	default:
		return 3
	}
}

// Goal represents a financial target tracked by the ledger.
type Goal struct {
	ID                  string
	Name                string
	Category            GoalCategory
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            time.Time
	MonthlyContribution decimal.Decimal
	Priority            GoalPriority
	Automate            bool
	CreatedAt           time.Time
}

// GoalDraft holds every mutable field of a goal.
type GoalDraft struct {
	Name                string
	Category            GoalCategory
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            time.Time
	MonthlyContribution decimal.Decimal
	Priority            GoalPriority
	Automate            bool
}

// NewGoal creates a new Goal entity from a validated draft.
func NewGoal(id string, draft GoalDraft, createdAt time.Time) *Goal {
	goal := &Goal{
		ID:        id,
		CreatedAt: DateOf(createdAt),
	}
	goal.Apply(draft)
	return goal
}

// Apply replaces all mutable fields with the draft values.
// ID and CreatedAt are never touched.
func (g *Goal) Apply(draft GoalDraft) {
	g.Name = draft.Name
	g.Category = draft.Category
	g.TargetAmount = draft.TargetAmount
	g.CurrentAmount = draft.CurrentAmount
	g.Deadline = DateOf(draft.Deadline)
	g.MonthlyContribution = draft.MonthlyContribution
	g.Priority = draft.Priority
	g.Automate = draft.Automate
}

// Draft returns the mutable fields of the goal.
func (g *Goal) Draft() GoalDraft {
	return GoalDraft{
		Name:                g.Name,
		Category:            g.Category,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		Deadline:            g.Deadline,
		MonthlyContribution: g.MonthlyContribution,
		Priority:            g.Priority,
		Automate:            g.Automate,
	}
}

// Clone returns an independent copy of the goal.
func (g *Goal) Clone() *Goal {
	c := *g
	return &c
}
