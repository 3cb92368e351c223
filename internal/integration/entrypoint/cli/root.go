package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/goals/internal/application/usecase/goal"
)

// Opener connects the storage backend named by driver and returns the goal
// use cases built on top of it. An empty driver selects the configured one.
type Opener func(ctx context.Context, driver string) (goal.UseCases, func() error, error)

type app struct {
	open     Opener
	driver   string
	useCases goal.UseCases
	closeFn  func() error
}

// Execute runs goalctl with args, writing to out. The storage opened for the
// command is closed before returning, also when the command fails.
func Execute(ctx context.Context, open Opener, args []string, out io.Writer) error {
	a := &app{open: open}

	rootCmd := a.newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

func (a *app) newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goalctl",
		Short:         "Track financial goals and project their progress",
		Long:          "goalctl manages the goal ledger: savings targets, deadlines and the monthly contribution each one needs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.driver, "storage", "s", "", "Storage driver (memory, redis, sqlite, postgres, mongo)")

	rootCmd.AddCommand(
		a.newListCommand(),
		a.newShowCommand(),
		a.newAddCommand(),
		a.newEditCommand(),
		a.newRemoveCommand(),
		a.newSummaryCommand(),
		a.newSuggestCommand(),
	)

	return rootCmd
}

func (a *app) connect(ctx context.Context) error {
	useCases, closeFn, err := a.open(ctx, a.driver)
	if err != nil {
		return err
	}
	a.useCases = useCases
	a.closeFn = closeFn
	return nil
}

func (a *app) close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}
