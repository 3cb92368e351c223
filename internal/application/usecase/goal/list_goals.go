package goal

import (
	"context"
	"sort"
	"strings"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// CategoryFilterAll keeps every category.
const CategoryFilterAll = "all"

// SortKey selects the ordering of a goal listing.
type SortKey string

// DefaultSortKey orders listings when no sort is requested.
const DefaultSortKey = SortByPriority

const (
	SortByPriority SortKey = "priority"
	SortByProgress SortKey = "progress"
	SortByDeadline SortKey = "deadline"
	SortByAmount   SortKey = "amount"
)

// IsValid reports whether the sort key is known.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByPriority, SortByProgress, SortByDeadline, SortByAmount:
		return true
	default:
		return false
	}
}

// ListQuery selects and orders goals. An empty Category keeps all goals and
// an empty SortBy means DefaultSortKey.
type ListQuery struct {
	Category entity.GoalCategory
	SortBy   SortKey
}

// ParseListQuery validates raw filter and sort parameters.
func ParseListQuery(category, sortBy string) (ListQuery, error) {
	query := ListQuery{}

	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && category != CategoryFilterAll {
		query.Category = entity.GoalCategory(category)
		if !query.Category.IsValid() {
			return ListQuery{}, domainerror.NewQueryValidationError("category",
				"must be all or one of savings, investment, debt, emergency, retirement, custom")
		}
	}

	query.SortBy = SortKey(strings.ToLower(strings.TrimSpace(sortBy)))
	if query.SortBy == "" {
		query.SortBy = DefaultSortKey
	}
	if !query.SortBy.IsValid() {
		return ListQuery{}, domainerror.NewQueryValidationError("sort",
			"must be one of priority, progress, deadline, amount")
	}

	return query, nil
}

func filterGoals(goals []*entity.Goal, category entity.GoalCategory) []*entity.Goal {
	if category == "" {
		return goals
	}
	filtered := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Category == category {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// sortGoals orders goals in place. Ties keep their relative order.
func sortGoals(goals []*entity.Goal, key SortKey) {
	if key == "" {
		key = DefaultSortKey
	}

	var less func(a, b *entity.Goal) bool
	switch key {
	case SortByPriority:
		less = func(a, b *entity.Goal) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case SortByProgress:
		less = progressDescending
	case SortByDeadline:
		less = func(a, b *entity.Goal) bool {
			return a.Deadline.Before(b.Deadline)
		}
	case SortByAmount:
		less = func(a, b *entity.Goal) bool {
			return a.TargetAmount.GreaterThan(b.TargetAmount)
		}
	default:
		return
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return less(goals[i], goals[j])
	})
}

// progressDescending compares current/target ratios. A zero target ranks as
// infinite progress and sorts first.
func progressDescending(a, b *entity.Goal) bool {
	aInf := !a.TargetAmount.IsPositive()
	bInf := !b.TargetAmount.IsPositive()
	switch {
	case aInf && bInf:
		return false
	case aInf:
		return true
	case bInf:
		return false
	}
	return a.CurrentAmount.Div(a.TargetAmount).GreaterThan(b.CurrentAmount.Div(b.TargetAmount))
}

// GoalOutput represents a single goal with its derived metrics.
type GoalOutput struct {
	Goal    *entity.Goal
	Metrics entity.GoalMetrics
}

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	Category string
	SortBy   string
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	ledger *Ledger
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(ledger *Ledger) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		ledger: ledger,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	query, err := ParseListQuery(input.Category, input.SortBy)
	if err != nil {
		return nil, err
	}

	goals, err := uc.ledger.List(ctx, query)
	if err != nil {
		return nil, err
	}

	now := uc.ledger.Now()
	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalOutput{
			Goal:    g,
			Metrics: g.Metrics(now),
		})
	}

	return output, nil
}
