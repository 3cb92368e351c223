package goal

import (
	"context"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID string
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *GoalOutput
}

// GetGoalUseCase handles getting a goal by ID.
type GetGoalUseCase struct {
	ledger *Ledger
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(ledger *Ledger) *GetGoalUseCase {
	return &GetGoalUseCase{
		ledger: ledger,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.ledger.Get(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: &GoalOutput{
			Goal:    goal,
			Metrics: goal.Metrics(uc.ledger.Now()),
		},
	}, nil
}
