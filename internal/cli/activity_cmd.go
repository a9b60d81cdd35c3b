package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/spf13/cobra"
)

const dateFlagLayout = "2006-01-02"

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityLsCmd(app),
		newActivitySetCmd(app),
		newActivityDoneCmd(app),
		newActivityUndoneCmd(app),
		newActivityDuplicateCmd(app),
		newActivityRemoveCmd(app),
		newActivityThisWeekCmd(app),
		newActivityNextWeekCmd(app),
	)

	return cmd
}

func resolveContainer(ctx context.Context, app *App, list, sublist string) (repository.Container, error) {
	listID, err := resolveListID(ctx, app, list)
	if err != nil {
		return repository.Container{}, err
	}
	c := repository.Container{ListID: listID}
	if sublist != "" {
		sublistID, err := resolveSublistID(ctx, app, listID, sublist)
		if err != nil {
			return repository.Container{}, err
		}
		c.SublistID = &sublistID
	}
	return c, nil
}

func newActivityAddCmd(app *App) *cobra.Command {
	var list, sublist, size, due, start string
	var priority bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create an activity in a list or sublist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveContainer(ctx, app, list, sublist)
			if err != nil {
				return err
			}

			duration, err := domain.ParseDurationSize(size)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				Title:      strings.Join(args, " "),
				ListID:     c.ListID,
				SublistID:  c.SublistID,
				Duration:   duration,
				IsPriority: priority,
			}
			if due != "" {
				dueDate, err := time.Parse(dateFlagLayout, due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				a.DueDate = dueDate.UTC()
				a.StartTime = domain.SentinelStartTime
			}
			if start != "" {
				if due == "" {
					return fmt.Errorf("--start requires --due")
				}
				a.StartTime = start
			}

			if err := app.Activities.Create(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s at position %d\n", formatter.FormatActivityLine(a), a.Position)
			return nil
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "Target list (title or ID)")
	cmd.Flags().StringVar(&sublist, "sublist", "", "Target sublist (title or ID)")
	cmd.Flags().StringVar(&size, "size", "S", "Duration size: S, M or L")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM), requires --due")
	cmd.Flags().BoolVar(&priority, "priority", false, "Mark as priority")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

func newActivityLsCmd(app *App) *cobra.Command {
	var list, sublist string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show a container's activities in position order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveContainer(ctx, app, list, sublist)
			if err != nil {
				return err
			}
			activities, err := app.Activities.ListByContainer(ctx, c)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities(activities))
			return nil
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "List (title or ID)")
	cmd.Flags().StringVar(&sublist, "sublist", "", "Sublist (title or ID)")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

func newActivitySetCmd(app *App) *cobra.Command {
	var size, due, start, sublist string
	var priority, noPriority, unschedule bool

	cmd := &cobra.Command{
		Use:   "set <activity>",
		Short: "Update an activity's size, schedule or container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}

			if size != "" {
				duration, err := domain.ParseDurationSize(size)
				if err != nil {
					return err
				}
				a.Duration = duration
			}
			if due != "" {
				dueDate, err := time.Parse(dateFlagLayout, due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				a.DueDate = dueDate.UTC()
			}
			if start != "" {
				a.StartTime = start
			}
			if unschedule {
				a.DueDate = domain.SentinelDueDate
				a.StartTime = domain.SentinelStartTime
			}
			if priority {
				a.IsPriority = true
			}
			if noPriority {
				a.IsPriority = false
			}
			if cmd.Flags().Changed("sublist") {
				if sublist == "" {
					a.SublistID = nil
				} else {
					sublistID, err := resolveSublistID(ctx, app, a.ListID, sublist)
					if err != nil {
						return err
					}
					a.SublistID = &sublistID
				}
			}

			if err := app.Activities.Update(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.FormatActivityLine(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "Duration size: S, M or L")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&sublist, "sublist", "", "Move to sublist; empty moves back to the list root")
	cmd.Flags().BoolVar(&priority, "priority", false, "Mark as priority")
	cmd.Flags().BoolVar(&noPriority, "no-priority", false, "Clear the priority mark")
	cmd.Flags().BoolVar(&unschedule, "unschedule", false, "Clear due date and start time")
	return cmd
}

func newActivityDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <activity>",
		Short: "Mark an activity as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err = app.Activities.SetCompletion(ctx, a.ID, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", formatter.Bold(a.Title))
			return nil
		},
	}
}

func newActivityUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <activity>",
		Short: "Reopen a completed activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err = app.Activities.SetCompletion(ctx, a.ID, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", formatter.Bold(a.Title))
			return nil
		},
	}
}

func newActivityDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <activity>",
		Short: "Copy an activity; the copy starts unscheduled and open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			clone, err := app.Activities.Duplicate(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicated as %s at position %d\n",
				formatter.Bold(clone.Title), clone.Position)
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <activity>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveActivity(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(ctx, a.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatter.Bold(a.Title))
			return nil
		},
	}
}

func newActivityThisWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "this-week <activity>",
		Short: "Set the due date to this week's Sunday",
		Args:  cobra.ExactArgs(1),
		RunE:  scheduleWeekRunE(app, 0),
	}
}

func newActivityNextWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next-week <activity>",
		Short: "Set the due date to next week's Sunday",
		Args:  cobra.ExactArgs(1),
		RunE:  scheduleWeekRunE(app, 1),
	}
}

func scheduleWeekRunE(app *App, weeksAhead int) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := resolveActivity(ctx, app, args[0])
		if err != nil {
			return err
		}
		a, err = app.Activities.ScheduleEndOfWeek(ctx, a.ID, weeksAhead)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s now due %s\n",
			formatter.Bold(a.Title), a.DueDate.Format(dateFlagLayout))
		return nil
	}
}
