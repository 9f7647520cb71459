package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/nutrition"
)

func newLibraryCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage saved food profiles.",
	}

	cmd.AddCommand(
		newLibraryListCommand(ctx, a),
		newLibraryAddCommand(ctx, a),
		newLibraryEditCommand(ctx, a),
		newLibraryDeleteCommand(ctx, a),
	)

	return cmd
}

func newLibraryListCommand(ctx context.Context, a *app) *cobra.Command {
	var searchFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library items, optionally filtered by name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			items := tr.Library().Search(searchFlag)
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "(no items)")
				return nil
			}
			for i, item := range items {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatLibraryItem(item))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&searchFlag, "search", "", "Case-insensitive name filter")

	return cmd
}

func newLibraryAddCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		basisFlag string
		macros    macroFlags
	)

	cmd := &cobra.Command{
		Use:   "add <name ...>",
		Short: "Save a new food profile.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			basis, err := nutrition.ParseBasis(basisFlag)
			if err != nil {
				return err
			}

			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			saved, err := tr.SaveLibraryItem(ctx, nutrition.LibraryItem{
				Name:   strings.Join(args, " "),
				Basis:  basis,
				Macros: macros.macros(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", formatLibraryItem(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&basisFlag, "basis", "g", "What the macros describe: g (per 100 g) or unit (per piece)")
	macros.register(cmd)

	return cmd
}

func newLibraryEditCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		nameFlag  string
		basisFlag string
		macros    macroFlags
	)

	cmd := &cobra.Command{
		Use:   "edit <id or name>",
		Short: "Update a saved food profile. Logged entries keep their macros.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			item, err := tr.Library().Find(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				item.Name = nameFlag
			}
			if cmd.Flags().Changed("basis") {
				if item.Basis, err = nutrition.ParseBasis(basisFlag); err != nil {
					return err
				}
			}
			item.Macros = macros.apply(cmd, item.Macros)

			saved, err := tr.SaveLibraryItem(ctx, item)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatLibraryItem(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "New name")
	cmd.Flags().StringVar(&basisFlag, "basis", "", "New basis: g|unit")
	macros.register(cmd)

	return cmd
}

func newLibraryDeleteCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id or name>",
		Short: "Remove a saved food profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			item, err := tr.Library().Find(args[0])
			if err != nil {
				return err
			}
			if _, err := tr.DeleteLibraryItem(ctx, item.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", item.Name)
			return nil
		},
	}

	return cmd
}
