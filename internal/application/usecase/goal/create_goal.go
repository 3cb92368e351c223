package goal

import (
	"context"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Draft RawGoalDraft
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	ledger *Ledger
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(ledger *Ledger) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		ledger: ledger,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	draft, err := ParseDraft(input.Draft)
	if err != nil {
		return nil, err
	}

	goal, err := uc.ledger.Create(ctx, draft)
	if goal == nil {
		return nil, err
	}

	// A PersistenceError still carries the in-memory goal.
	return &CreateGoalOutput{
		Goal: &GoalOutput{
			Goal:    goal,
			Metrics: goal.Metrics(uc.ledger.Now()),
		},
	}, err
}
