package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage activity lists",
	}

	cmd.AddCommand(
		newListAddCmd(app),
		newListLsCmd(app),
		newListRenameCmd(app),
		newListRemoveCmd(app),
	)

	return cmd
}

func newListAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Lists.Create(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created list %s\n", formatter.Bold(l.Title))
			return nil
		},
	}
}

func newListLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Show all lists with their activity counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			lists, err := app.Lists.List(ctx)
			if err != nil {
				return err
			}
			if len(lists) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No lists yet. Create one with: semainier list add <title>"))
				return nil
			}

			headers := []string{"TITLE", "ACTIVITIES", "SUBLISTS", "ID"}
			rows := make([][]string, 0, len(lists))
			for _, l := range lists {
				activities, err := app.Activities.ListByList(ctx, l.ID)
				if err != nil {
					return err
				}
				sublists, err := app.Sublists.ListByList(ctx, l.ID)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					formatter.Bold(l.Title),
					strconv.Itoa(len(activities)),
					strconv.Itoa(len(sublists)),
					formatter.Dim(shortID(l.ID)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newListRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <list> <new-title>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveListID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lists.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed list to %s\n", formatter.Bold(args[1]))
			return nil
		},
	}
}

func newListRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list>",
		Short: "Delete a list and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveListID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lists.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "List deleted, including its sublists and activities")
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
