package cli

import (
	"github.com/alexanderramin/semainier/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Lists      service.ListService
	Sublists   service.SublistService
	Activities service.ActivityService
	Settings   service.SettingsService
	Timetable  service.TimetableService
	Week       service.WeekService

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive settings form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "semainier" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "semainier",
		Short: "Weekly planner with a time grid and WIP capacity tracking",
	}

	root.AddCommand(
		newListCmd(app),
		newSublistCmd(app),
		newActivityCmd(app),
		newTimetableCmd(app),
		newWeekCmd(app),
		newSettingsCmd(app),
	)

	return root
}
