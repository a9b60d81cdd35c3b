package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSublistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sublist",
		Short: "Manage sublists within a list",
	}

	cmd.AddCommand(
		newSublistAddCmd(app),
		newSublistLsCmd(app),
		newSublistRemoveCmd(app),
	)

	return cmd
}

func newSublistAddCmd(app *App) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a sublist inside a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			listID, err := resolveListID(ctx, app, list)
			if err != nil {
				return err
			}
			s, err := app.Sublists.Create(ctx, listID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created sublist %s\n", formatter.Bold(s.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "Parent list (title or ID)")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

func newSublistLsCmd(app *App) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show a list's sublists",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			listID, err := resolveListID(ctx, app, list)
			if err != nil {
				return err
			}
			sublists, err := app.Sublists.ListByList(ctx, listID)
			if err != nil {
				return err
			}
			if len(sublists) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No sublists."))
				return nil
			}

			headers := []string{"TITLE", "ID"}
			rows := make([][]string, 0, len(sublists))
			for _, s := range sublists {
				rows = append(rows, []string{formatter.Bold(s.Title), formatter.Dim(shortID(s.ID))})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "Parent list (title or ID)")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

func newSublistRemoveCmd(app *App) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "rm <sublist>",
		Short: "Delete a sublist; its activities go back to the list root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			listID, err := resolveListID(ctx, app, list)
			if err != nil {
				return err
			}
			id, err := resolveSublistID(ctx, app, listID, args[0])
			if err != nil {
				return err
			}
			if err := app.Sublists.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sublist deleted, its activities moved to the list root")
			return nil
		},
	}

	cmd.Flags().StringVar(&list, "list", "", "Parent list (title or ID)")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}
