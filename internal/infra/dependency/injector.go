// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/goals/config"
	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/infra/cache"
	"github.com/finance-tracker/goals/internal/infra/db"
	"github.com/finance-tracker/goals/internal/infra/mongodb"
	"github.com/finance-tracker/goals/internal/infra/server/router"
	"github.com/finance-tracker/goals/internal/integration/adapters"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/goals/internal/integration/persistence"
	"github.com/finance-tracker/goals/internal/integration/persistence/model"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    adapter.KeyValueStore
	Ledger   *goal.Ledger
	UseCases goal.UseCases
	Router   *router.Router
	closers  []func() error
}

// OpenStore connects the key-value store selected by cfg.Storage.Driver.
// The returned close function releases the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config) (adapter.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return persistence.NewMemoryStore(), noop, nil

	case config.StorageDriverRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewRedisStore(client), client.Close, nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		var (
			database *db.Database
			err      error
		)
		if cfg.Storage.Driver == config.StorageDriverSQLite {
			database, err = db.NewSQLiteConnection(cfg.Storage.SQLitePath)
		} else {
			database, err = db.NewPostgresConnection(&cfg.Database)
		}
		if err != nil {
			return nil, nil, err
		}
		if cfg.Storage.AutoMigrate {
			if err := database.AutoMigrate(&model.KeyValueModel{}); err != nil {
				_ = database.Close()
				return nil, nil, err
			}
		}
		return persistence.NewSQLStore(database.DB()), database.Close, nil

	case config.StorageDriverMongo:
		conn, err := mongodb.NewConnection(ctx, &cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error { return conn.Close(context.Background()) }
		return persistence.NewMongoStore(conn.Collection()), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// NewInjector opens the configured storage and wires every dependency.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	injector := NewInjectorWithStore(cfg, store, adapters.NewSystemClock())
	injector.closers = append(injector.closers, closeStore)
	return injector, nil
}

// OpenUseCases opens the configured storage and builds the goal use cases
// without the HTTP layer.
func OpenUseCases(ctx context.Context, cfg *config.Config) (goal.UseCases, func() error, error) {
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return goal.UseCases{}, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	ledger := newLedger(cfg, store, adapters.NewSystemClock())
	return goal.NewUseCases(ledger), closeStore, nil
}

func newLedger(cfg *config.Config, store adapter.KeyValueStore, clock adapter.Clock) *goal.Ledger {
	goalRepo := persistence.NewGoalRepository(store, cfg.Storage.Key)
	return goal.NewLedger(goalRepo, clock)
}

// NewInjectorWithStore wires every dependency on top of an existing store.
func NewInjectorWithStore(cfg *config.Config, store adapter.KeyValueStore, clock adapter.Clock) *Injector {
	ledger := newLedger(cfg, store, clock)

	useCases := goal.NewUseCases(ledger)

	healthController := controller.NewHealthController(cfg.Storage.Driver, store.HealthCheck)

	goalController := controller.NewGoalController(
		useCases.List,
		useCases.Create,
		useCases.Get,
		useCases.Update,
		useCases.Delete,
		useCases.Summary,
		useCases.Suggest,
	)

	writeLimiter := middleware.NewWriteLimiter(clock, cfg.Server.MaxWrites, cfg.Server.WriteWindow)

	r := router.NewRouter(healthController, goalController, writeLimiter)

	return &Injector{
		Config:   cfg,
		Store:    store,
		Ledger:   ledger,
		UseCases: useCases,
		Router:   r,
	}
}

// Close releases the storage connections opened by NewInjector.
func (i *Injector) Close() error {
	var errs []error
	for _, closeFn := range i.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	slog.Info("Storage closed", "driver", i.Config.Storage.Driver)
	return nil
}
