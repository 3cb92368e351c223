package goal

import (
	"context"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID string
}

// DeleteGoalUseCase handles goal deletion logic.
// Deleting an unknown goal succeeds without effect.
type DeleteGoalUseCase struct {
	ledger *Ledger
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(ledger *Ledger) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		ledger: ledger,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	return uc.ledger.Remove(ctx, input.GoalID)
}
