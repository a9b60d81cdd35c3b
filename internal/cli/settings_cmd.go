package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the planner configuration",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			headers := []string{"SETTING", "VALUE"}
			rows := [][]string{
				{"Time unit", fmt.Sprintf("%d min", s.UnitMinutes)},
				{"Day start", s.DayStart},
				{"Units per day", strconv.Itoa(s.UnitsPerDay)},
				{"WIP limit", fmt.Sprintf("%d units (max %d)", s.WipLimit, s.MaxWeeklyUnits())},
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n",
				formatter.Dim(fmt.Sprintf("Suggested units per day for %d min units: %d",
					s.UnitMinutes, domain.SuggestedUnitsPerDay(s.UnitMinutes))))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var unitMinutes, dayStart, unitsPerDay, wipLimit string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change configuration values",
		Long: "Change configuration values. With flags the given fields are updated; " +
			"without flags an interactive form opens, pre-filled with the current values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			current, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			in := domain.InputFromSettings(current)

			anyFlag := false
			cmd.Flags().Visit(func(f *pflag.Flag) {
				anyFlag = true
				switch f.Name {
				case "unit":
					in.UnitMinutes = unitMinutes
				case "day-start":
					in.DayStart = dayStart
				case "units-per-day":
					in.UnitsPerDay = unitsPerDay
				case "wip-limit":
					in.WipLimit = wipLimit
				}
			})

			if !anyFlag {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no flags given and no interactive terminal, see --help")
				}
				if err := runSettingsForm(&in); err != nil {
					return err
				}
			}

			updated, verrs, err := app.Settings.Update(ctx, in)
			if err != nil {
				return err
			}
			if len(verrs) > 0 {
				for _, field := range verrs.Fields() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n",
						formatter.StyleRed.Render("✗"), field, verrs[field])
				}
				return fmt.Errorf("settings unchanged: %d validation errors", len(verrs))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Settings updated: %d min units from %s, %d per day, WIP limit %d\n",
				updated.UnitMinutes, updated.DayStart, updated.UnitsPerDay, updated.WipLimit)
			return nil
		},
	}

	cmd.Flags().StringVar(&unitMinutes, "unit", "", "Time unit in minutes (5 to 60, multiple of 5)")
	cmd.Flags().StringVar(&dayStart, "day-start", "", "Day start time (HH:MM, minutes in steps of 5)")
	cmd.Flags().StringVar(&unitsPerDay, "units-per-day", "", "Number of grid units per day")
	cmd.Flags().StringVar(&wipLimit, "wip-limit", "", "Weekly WIP limit in units")
	return cmd
}

func runSettingsForm(in *domain.SettingsInput) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time unit (minutes)").
				Description("Length of one grid slot, 5 to 60 in steps of 5").
				Value(&in.UnitMinutes),
			huh.NewInput().
				Title("Day start (HH:MM)").
				Value(&in.DayStart),
			huh.NewInput().
				Title("Units per day").
				Value(&in.UnitsPerDay),
			huh.NewInput().
				Title("WIP limit (units per week)").
				Value(&in.WipLimit),
		),
	).WithTheme(semainierHuhTheme()).WithShowHelp(false)

	return form.Run()
}
