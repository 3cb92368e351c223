package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// SeedGoals returns the fixed collection installed when nothing is persisted.
func SeedGoals() []*entity.Goal {
	return []*entity.Goal{
		seedGoal("1", "Emergency Fund", entity.GoalCategoryEmergency, 15000, 8500, "2025-06-30", 500, entity.GoalPriorityHigh, true, "2024-01-15"),
		seedGoal("2", "House Down Payment", entity.GoalCategorySavings, 60000, 22000, "2026-12-31", 1500, entity.GoalPriorityHigh, true, "2024-02-01"),
		seedGoal("3", "Investment Portfolio", entity.GoalCategoryInvestment, 25000, 12500, "2025-12-31", 800, entity.GoalPriorityMedium, true, "2024-03-10"),
		seedGoal("4", "Car Loan Payoff", entity.GoalCategoryDebt, 8000, 5200, "2025-03-31", 400, entity.GoalPriorityMedium, false, "2024-01-20"),
		seedGoal("5", "Vacation Fund", entity.GoalCategoryCustom, 5000, 1800, "2025-08-15", 300, entity.GoalPriorityLow, false, "2024-04-01"),
	}
}

func seedGoal(
	id, name string,
	category entity.GoalCategory,
	target, current int64,
	deadline string,
	monthly int64,
	priority entity.GoalPriority,
	automate bool,
	createdAt string,
) *entity.Goal {
	return entity.NewGoal(id, entity.GoalDraft{
		Name:                name,
		Category:            category,
		TargetAmount:        decimal.NewFromInt(target),
		CurrentAmount:       decimal.NewFromInt(current),
		Deadline:            mustDate(deadline),
		MonthlyContribution: decimal.NewFromInt(monthly),
		Priority:            priority,
		Automate:            automate,
	}, mustDate(createdAt))
}

func mustDate(value string) time.Time {
	t, err := entity.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}
