package goal

import (
	"context"
)

// UpdateGoalInput represents the input for goal update.
// Every mutable field is replaced by the draft.
type UpdateGoalInput struct {
	GoalID string
	Draft  RawGoalDraft
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	ledger *Ledger
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(ledger *Ledger) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		ledger: ledger,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	draft, err := ParseDraft(input.Draft)
	if err != nil {
		return nil, err
	}

	goal, err := uc.ledger.Update(ctx, input.GoalID, draft)
	if goal == nil {
		return nil, err
	}

	// A PersistenceError still carries the in-memory goal.
	return &UpdateGoalOutput{
		Goal: &GoalOutput{
			Goal:    goal,
			Metrics: goal.Metrics(uc.ledger.Now()),
		},
	}, err
}
