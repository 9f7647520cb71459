package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/journal"
	"github.com/faizmokh/makan/internal/ledger"
)

func newExportCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write logged days to monthly Markdown journals under the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to ledger.Date
			var err error
			if fromFlag != "" {
				if from, err = ledger.ParseDate(fromFlag); err != nil {
					return err
				}
			}
			if toFlag != "" {
				if to, err = ledger.ParseDate(toFlag); err != nil {
					return err
				}
			}

			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			months, err := journal.NewWriter(a.cfg.Files).Export(ctx, tr.Snapshot(), from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(months) == 0 {
				fmt.Fprintln(out, "Nothing to export.")
				return nil
			}
			for _, month := range months {
				if len(month.Dates) > 0 {
					fmt.Fprintf(out, "Wrote %d day%s to %s\n", len(month.Dates), dayPlural(len(month.Dates)), month.Path)
				}
				if len(month.Removed) > 0 {
					fmt.Fprintf(out, "Removed %d empty day%s from %s\n", len(month.Removed), dayPlural(len(month.Removed)), month.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "First date to export, YYYY-MM-DD (default: earliest)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Last date to export, YYYY-MM-DD (default: latest)")

	return cmd
}

func dayPlural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
