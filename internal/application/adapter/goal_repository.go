// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GoalRepository defines the interface for goal collection persistence.
// The collection is always read and written as a whole.
type GoalRepository interface {
	// LoadAll reads the persisted collection. found is false when nothing
	// has been persisted yet.
	LoadAll(ctx context.Context) (goals []*entity.Goal, found bool, err error)

	// SaveAll replaces the persisted collection with goals.
	SaveAll(ctx context.Context, goals []*entity.Goal) error
}
