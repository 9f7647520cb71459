package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/api"
	"github.com/faizmokh/makan/internal/version"
)

func newServeCommand(ctx context.Context, a *app) *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger as a local JSON API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			addr := a.cfg.APIAddr
			if addrFlag != "" {
				addr = addrFlag
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving makan API on http://%s\n", addr)
			return api.NewServer(tr, a.logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default from MAKAN_API_ADDR)")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "makan %s\n", version.Info())
		},
	}
}
