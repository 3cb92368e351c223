// Package main is the entry point for the goalctl command line tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/goals/config"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/infra/dependency"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/cli"
)

func main() {
	_ = godotenv.Load()

	// Only warnings and errors reach the terminal; stdout carries the tables.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	open := func(ctx context.Context, driver string) (goal.UseCases, func() error, error) {
		cfg := config.Load()
		if driver != "" {
			cfg.Storage.Driver = driver
		}
		if err := cfg.Validate(); err != nil {
			return goal.UseCases{}, nil, err
		}
		return dependency.OpenUseCases(ctx, cfg)
	}

	if err := cli.Execute(context.Background(), open, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
