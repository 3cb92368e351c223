// Package persistence implements repository interfaces for storage operations.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	"github.com/finance-tracker/goals/internal/integration/persistence/model"
)

// DefaultGoalsKey is the storage key holding the goal collection.
const DefaultGoalsKey = "autonomous-finance-goals"

// goalRepository implements the adapter.GoalRepository interface on top of
// a key-value store. The whole collection lives under a single key.
type goalRepository struct {
	store adapter.KeyValueStore
	key   string
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(store adapter.KeyValueStore, key string) adapter.GoalRepository {
	if key == "" {
		key = DefaultGoalsKey
	}
	return &goalRepository{
		store: store,
		key:   key,
	}
}

// LoadAll reads and decodes the persisted collection.
func (r *goalRepository) LoadAll(ctx context.Context) ([]*entity.Goal, bool, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", r.key, err)
	}
	if !found {
		return nil, false, nil
	}

	var records []model.GoalRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode goals under %s: %w", r.key, err)
	}

	goals := make([]*entity.Goal, 0, len(records))
	for i := range records {
		goal, err := records[i].ToEntity()
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode goals under %s: %w", r.key, err)
		}
		goals = append(goals, goal)
	}
	return goals, true, nil
}

// SaveAll encodes and writes the full collection, replacing the stored value.
func (r *goalRepository) SaveAll(ctx context.Context, goals []*entity.Goal) error {
	records := make([]model.GoalRecord, len(goals))
	for i, g := range goals {
		records[i] = model.GoalRecordFromEntity(g)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to write key %s: %w", r.key, err)
	}
	return nil
}
