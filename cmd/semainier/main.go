package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/semainier/internal/cli"
	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.semainier/semainier.db
	dbPath := os.Getenv("SEMAINIER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".semainier", "semainier.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	listRepo := repository.NewSQLiteListRepo(database)
	sublistRepo := repository.NewSQLiteSublistRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	goalRepo := repository.NewSQLiteWeeklyGoalRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Lists:      service.NewListService(listRepo),
		Sublists:   service.NewSublistService(sublistRepo, listRepo),
		Activities: service.NewActivityService(activityRepo, sublistRepo, uow),
		Settings:   service.NewSettingsService(settingsRepo),
		Timetable:  service.NewTimetableService(settingsRepo),
		Week:       service.NewWeekService(activityRepo, goalRepo, settingsRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
