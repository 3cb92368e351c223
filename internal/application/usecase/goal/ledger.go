// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// Ledger owns the authoritative in-memory goal collection.
// Every mutation writes the full collection through the repository.
type Ledger struct {
	mu     sync.Mutex
	repo   adapter.GoalRepository
	clock  adapter.Clock
	newID  func() string
	goals  []*entity.Goal
	loaded bool
}

// NewLedger creates a new Ledger instance.
func NewLedger(repo adapter.GoalRepository, clock adapter.Clock) *Ledger {
	return &Ledger{
		repo:  repo,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Now returns the ledger clock's current instant.
func (l *Ledger) Now() time.Time {
	return l.clock.Now()
}

// Load reads the persisted collection, installing the seed set when nothing
// has been persisted yet. Only the first successful call touches storage.
func (l *Ledger) Load(ctx context.Context) ([]*entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return l.snapshot(), nil
}

// Get returns a copy of the goal with the given id.
func (l *Ledger) Get(ctx context.Context, id string) (*entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := l.indexOf(id)
	if idx < 0 {
		return nil, domainerror.NewNotFoundError(id)
	}
	return l.goals[idx].Clone(), nil
}

// Create validates the draft and appends a new goal with a fresh id.
// When the write fails the goal stays in memory and is returned together
// with the PersistenceError.
func (l *Ledger) Create(ctx context.Context, draft entity.GoalDraft) (*entity.Goal, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(l.uniqueID(), draft, l.clock.Now())
	l.goals = append(l.goals, goal)

	if err := l.persist(ctx); err != nil {
		return goal.Clone(), err
	}

	slog.Info("Goal created", "goal_id", goal.ID, "category", goal.Category)
	return goal.Clone(), nil
}

// Update replaces every mutable field of the goal with the draft values.
// A failed write returns the updated goal with the PersistenceError.
func (l *Ledger) Update(ctx context.Context, id string, draft entity.GoalDraft) (*entity.Goal, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	idx := l.indexOf(id)
	if idx < 0 {
		return nil, domainerror.NewNotFoundError(id)
	}

	updated := l.goals[idx].Clone()
	updated.Apply(draft)
	l.goals[idx] = updated

	if err := l.persist(ctx); err != nil {
		return updated.Clone(), err
	}

	slog.Info("Goal updated", "goal_id", id)
	return updated.Clone(), nil
}

// Remove deletes the goal with the given id. Unknown ids are a no-op.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return err
	}

	idx := l.indexOf(id)
	if idx < 0 {
		return nil
	}

	remaining := make([]*entity.Goal, 0, len(l.goals)-1)
	remaining = append(remaining, l.goals[:idx]...)
	remaining = append(remaining, l.goals[idx+1:]...)
	l.goals = remaining

	if err := l.persist(ctx); err != nil {
		return err
	}

	slog.Info("Goal removed", "goal_id", id)
	return nil
}

// List returns the goals matching the query, sorted by its key.
// It never mutates or persists.
func (l *Ledger) List(ctx context.Context, query ListQuery) ([]*entity.Goal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	goals := filterGoals(l.snapshot(), query.Category)
	sortGoals(goals, query.SortBy)
	return goals, nil
}

// Summary computes the aggregate metrics over the full collection.
func (l *Ledger) Summary(ctx context.Context) (entity.GoalSummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return entity.GoalSummary{}, err
	}
	return entity.SummarizeGoals(l.goals), nil
}

// ensureLoaded must be called with mu held.
func (l *Ledger) ensureLoaded(ctx context.Context) error {
	if l.loaded {
		return nil
	}

	goals, found, err := l.repo.LoadAll(ctx)
	if err != nil {
		return domainerror.NewPersistenceError(domainerror.PersistenceOpLoad, err)
	}

	if found {
		l.goals = goals
		l.loaded = true
		slog.Info("Goals loaded from storage", "count", len(goals))
		return nil
	}

	l.goals = SeedGoals()
	l.loaded = true
	slog.Info("No persisted goals found, installing seed set", "count", len(l.goals))
	return l.persist(ctx)
}

// persist must be called with mu held. A failure leaves the in-memory
// collection in place; the next mutation writes it again.
func (l *Ledger) persist(ctx context.Context) error {
	if err := l.repo.SaveAll(ctx, l.goals); err != nil {
		slog.Error("Failed to persist goals", "error", err, "count", len(l.goals))
		return domainerror.NewPersistenceError(domainerror.PersistenceOpSave, err)
	}
	return nil
}

func (l *Ledger) indexOf(id string) int {
	for i, g := range l.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) uniqueID() string {
	for {
		id := l.newID()
		if l.indexOf(id) < 0 {
			return id
		}
	}
}

func (l *Ledger) snapshot() []*entity.Goal {
	goals := make([]*entity.Goal, len(l.goals))
	for i, g := range l.goals {
		goals[i] = g.Clone()
	}
	return goals
}
