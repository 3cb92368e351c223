package goal

import (
	"context"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GetSummaryOutput represents the aggregate metrics of all goals.
type GetSummaryOutput struct {
	Summary entity.GoalSummary
}

// GetSummaryUseCase computes aggregate goal metrics. Nothing is cached.
type GetSummaryUseCase struct {
	ledger *Ledger
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(ledger *Ledger) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ledger: ledger,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	summary, err := uc.ledger.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &GetSummaryOutput{Summary: summary}, nil
}
