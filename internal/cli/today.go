package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

func newTodayCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag   string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the budget, totals and log for today or a specific date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			date, err := resolveDate(tr, dateFlag)
			if err != nil {
				return err
			}
			sum := tr.Summary(date)

			if outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(sum)
			}
			printSummary(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the summary as JSON")

	return cmd
}
