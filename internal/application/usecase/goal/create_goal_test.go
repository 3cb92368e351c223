package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

func TestCreateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	input := CreateGoalInput{Draft: RawGoalDraft{Name: "Rainy Day", TargetAmount: "15000", CurrentAmount: "8500", Deadline: "2027-03-23"}}

	t.Run("returns goal with metrics", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newTestLedger(&fakeGoalRepository{}))

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Metrics.ProgressPercent.StringFixed(2) != "56.67" {
			t.Errorf("expected progress 56.67, got %s", output.Goal.Metrics.ProgressPercent)
		}
	})

	t.Run("unsaved goal comes back with the storage error", func(t *testing.T) {
		repo := &fakeGoalRepository{goals: []*entity.Goal{}, found: true, saveErr: errors.New("disk full")}
		uc := NewCreateGoalUseCase(newTestLedger(repo))

		output, err := uc.Execute(ctx, input)

		if !errors.Is(err, domainerror.ErrGoalPersistence) {
			t.Fatalf("expected persistence error, got %v", err)
		}
		if output == nil || output.Goal.Goal.ID == "" {
			t.Fatalf("expected unsaved goal with an id, got %+v", output)
		}
	})

	t.Run("invalid draft returns no goal", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newTestLedger(&fakeGoalRepository{}))

		output, err := uc.Execute(ctx, CreateGoalInput{Draft: RawGoalDraft{Name: "A", TargetAmount: "1e50000000", Deadline: "2027-01-01"}})

		if !errors.Is(err, domainerror.ErrGoalValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if output != nil {
			t.Errorf("expected no output, got %+v", output)
		}
	})
}
