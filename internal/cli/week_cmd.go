package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Weekly dashboard and goal",
	}

	cmd.AddCommand(
		newWeekStatusCmd(app),
		newWeekGoalCmd(app),
	)

	return cmd
}

func weekReference(offset int) time.Time {
	return time.Now().UTC().AddDate(0, 0, 7*offset)
}

func newWeekStatusCmd(app *App) *cobra.Command {
	var next bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the week's capacity report and goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			offset := 0
			if next {
				offset = 1
			}
			sum, err := app.Week.Summary(context.Background(), weekReference(offset))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekSummary(sum))
			return nil
		},
	}

	cmd.Flags().BoolVar(&next, "next", false, "Show next week instead of the current one")
	return cmd
}

func newWeekGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the weekly goal",
	}

	cmd.AddCommand(
		newWeekGoalShowCmd(app),
		newWeekGoalSetCmd(app),
		newWeekGoalClearCmd(app),
	)

	return cmd
}

func newWeekGoalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this week's goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := app.Week.GetGoal(context.Background(), weekReference(0))
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No goal set for this week."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Week of %s: %s\n",
				goal.WeekStart.Format(dateFlagLayout), formatter.Bold(goal.Content))
			return nil
		},
	}
}

func newWeekGoalSetCmd(app *App) *cobra.Command {
	var next bool

	cmd := &cobra.Command{
		Use:   "set <content>",
		Short: "Set or replace the week's goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset := 0
			if next {
				offset = 1
			}
			goal, err := app.Week.SetGoal(context.Background(), weekReference(offset), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal for week of %s set\n", goal.WeekStart.Format(dateFlagLayout))
			return nil
		},
	}

	cmd.Flags().BoolVar(&next, "next", false, "Set next week's goal instead")
	return cmd
}

func newWeekGoalClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove this week's goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Week.ClearGoal(context.Background(), weekReference(0)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal cleared")
			return nil
		},
	}
}
