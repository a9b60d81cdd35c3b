package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/spf13/cobra"
)

func newTimetableCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Show the day's time grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := time.Now().UTC()
			if date != "" {
				parsed, err := time.Parse(dateFlagLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				target = parsed.UTC()
			}
			view, err := app.Timetable.DayView(context.Background(), target)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayView(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD), clamped to the current week")

	cmd.AddCommand(
		newTimetableStepCmd(app, "prev", "Show the previous day of the week", domain.NavPrev),
		newTimetableStepCmd(app, "next", "Show the next day of the week", domain.NavNext),
	)

	return cmd
}

func newTimetableStepCmd(app *App, use, short string, dir domain.NavDirection) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := time.Now().UTC()
			if from != "" {
				parsed, err := time.Parse(dateFlagLayout, from)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", from, err)
				}
				current = parsed.UTC()
			}
			view, err := app.Timetable.Navigate(context.Background(), current, dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayView(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Day to step from (YYYY-MM-DD), defaults to today")
	return cmd
}
