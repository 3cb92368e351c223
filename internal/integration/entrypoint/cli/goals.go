package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/domain/entity"
)

const progressBarWidth = 20

// goalFlags holds the editable goal fields as typed on the command line.
type goalFlags struct {
	name     string
	category string
	target   string
	current  string
	deadline string
	monthly  string
	priority string
	automate bool
}

func (f *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Goal name")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category (savings, investment, debt, emergency, retirement, custom)")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "Target amount")
	cmd.Flags().StringVar(&f.current, "current", "", "Amount saved so far")
	cmd.Flags().StringVarP(&f.deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.monthly, "monthly", "m", "", "Committed monthly contribution")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Priority (high, medium, low)")
	cmd.Flags().BoolVar(&f.automate, "automate", true, "Contribute automatically every month")
}

// draft builds a raw draft from the flags. Unchanged flags keep the value
// from base.
func (f *goalFlags) draft(cmd *cobra.Command, base goal.RawGoalDraft) goal.RawGoalDraft {
	changed := cmd.Flags().Changed

	if changed("name") {
		base.Name = f.name
	}
	if changed("category") {
		base.Category = f.category
	}
	if changed("target") {
		base.TargetAmount = f.target
	}
	if changed("current") {
		base.CurrentAmount = f.current
	}
	if changed("deadline") {
		base.Deadline = f.deadline
	}
	if changed("monthly") {
		base.MonthlyContribution = f.monthly
	}
	if changed("priority") {
		base.Priority = f.priority
	}
	if changed("automate") {
		automate := f.automate
		base.Automate = &automate
	}
	return base
}

func rawDraftOf(g *entity.Goal) goal.RawGoalDraft {
	automate := g.Automate
	return goal.RawGoalDraft{
		Name:                g.Name,
		Category:            string(g.Category),
		TargetAmount:        g.TargetAmount.String(),
		CurrentAmount:       g.CurrentAmount.String(),
		Deadline:            entity.FormatDate(g.Deadline),
		MonthlyContribution: g.MonthlyContribution.String(),
		Priority:            string(g.Priority),
		Automate:            &automate,
	}
}

func (a *app) newListCommand() *cobra.Command {
	var category, sortBy string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := a.useCases.List.Execute(cmd.Context(), goal.ListGoalsInput{
				Category: category,
				SortBy:   sortBy,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(output.Goals) == 0 {
				fmt.Fprintln(out, "\n  No goals found.")
				return nil
			}

			rows := make([][]string, 0, len(output.Goals))
			for _, g := range output.Goals {
				rows = append(rows, []string{
					g.Goal.Name,
					g.Goal.ID,
					string(g.Goal.Category),
					formatPercent(g.Metrics.ProgressPercent),
					formatMoney(g.Goal.CurrentAmount),
					formatMoney(g.Goal.TargetAmount),
					entity.FormatDate(g.Goal.Deadline),
					formatMoney(g.Metrics.RequiredMonthly),
					statusLabel(g.Metrics),
				})
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Goal", "ID", "Category", "Progress", "Saved", "Target", "Deadline", "Needed/mo", "Status"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list goals of this category")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by priority, progress, deadline or amount (default priority)")

	return cmd
}

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a goal and its projection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.useCases.Get.Execute(cmd.Context(), goal.GetGoalInput{GoalID: args[0]})
			if err != nil {
				return err
			}
			printGoal(cmd.OutOrStdout(), output.Goal)
			return nil
		},
	}
}

func (a *app) newAddCommand() *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := a.useCases.Create.Execute(cmd.Context(), goal.CreateGoalInput{
				Draft: flags.draft(cmd, goal.RawGoalDraft{}),
			})
			if err != nil {
				return err
			}
			printGoal(cmd.OutOrStdout(), output.Goal)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *app) newEditCommand() *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a goal",
		Long:  "Change fields of a goal. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := a.useCases.Get.Execute(cmd.Context(), goal.GetGoalInput{GoalID: args[0]})
			if err != nil {
				return err
			}

			output, err := a.useCases.Update.Execute(cmd.Context(), goal.UpdateGoalInput{
				GoalID: args[0],
				Draft:  flags.draft(cmd, rawDraftOf(existing.Goal.Goal)),
			})
			if err != nil {
				return err
			}
			printGoal(cmd.OutOrStdout(), output.Goal)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *app) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.useCases.Delete.Execute(cmd.Context(), goal.DeleteGoalInput{GoalID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s\n", args[0])
			return nil
		},
	}
}

func (a *app) newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals across all goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := a.useCases.Summary.Execute(cmd.Context())
			if err != nil {
				return err
			}
			s := output.Summary

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTitle("GOAL SUMMARY"))
			fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, [][]string{
				{"Goals", strconv.Itoa(s.GoalCount)},
				{"Completed", strconv.Itoa(s.CompletedCount)},
				{"Remaining", strconv.Itoa(s.RemainingCount)},
				{"Automated", fmt.Sprintf("%d (%d%%)", s.AutomatedCount, s.AutomatedPercent)},
				{"Saved", formatMoney(s.TotalCurrent)},
				{"Target", formatMoney(s.TotalTarget)},
				{"Progress", formatPercent(s.OverallProgressPercent)},
				{"Monthly contributions", formatMoney(s.MonthlyRequiredTotal)},
			}))
			fmt.Fprintf(out, "  %s\n", renderProgressBar(s.OverallProgressPercent, progressBarWidth))
			return nil
		},
	}
}

func (a *app) newSuggestCommand() *cobra.Command {
	var target, current, deadline string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a monthly contribution for a target and deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := a.useCases.Suggest.Execute(goal.SuggestMonthlyInput{
				TargetAmount:  target,
				CurrentAmount: current,
				Deadline:      deadline,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suggested monthly contribution: %s\n", formatMoney(output.SuggestedMonthly))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Target amount")
	cmd.Flags().StringVar(&current, "current", "", "Amount saved so far")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")

	return cmd
}

func printGoal(out io.Writer, g *goal.GoalOutput) {
	m := g.Metrics

	rows := [][]string{
		{"ID", g.Goal.ID},
		{"Category", string(g.Goal.Category)},
		{"Priority", string(g.Goal.Priority)},
		{"Saved", formatMoney(g.Goal.CurrentAmount)},
		{"Target", formatMoney(g.Goal.TargetAmount)},
		{"Remaining", formatMoney(m.RemainingAmount)},
		{"Progress", formatPercent(m.ProgressPercent)},
		{"Deadline", entity.FormatDate(g.Goal.Deadline)},
		{"Time left", formatDays(remainingDays(m))},
		{"Monthly contribution", formatMoney(g.Goal.MonthlyContribution)},
		{"Needed per month", formatMoney(m.RequiredMonthly)},
	}
	if m.MonthlyShortfall.IsPositive() {
		rows = append(rows, []string{"Shortfall per month", formatMoney(m.MonthlyShortfall)})
	}
	rows = append(rows,
		[]string{"Automated", strconv.FormatBool(g.Goal.Automate)},
		[]string{"Created", entity.FormatDate(g.Goal.CreatedAt)},
		[]string{"Status", statusLabel(m)},
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTitle(strings.ToUpper(g.Goal.Name)))
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
	fmt.Fprintf(out, "  %s\n", renderProgressBar(m.ProgressPercent, progressBarWidth))
}

func remainingDays(m entity.GoalMetrics) int {
	if m.Overdue {
		return -1
	}
	return m.DaysRemaining
}
