package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/config"
	"github.com/faizmokh/makan/internal/tracker"
	"github.com/faizmokh/makan/internal/ui"
	"github.com/faizmokh/makan/internal/version"
)

// app carries what every subcommand needs to reach the ledger.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	now    func() time.Time
}

func newApp(cfg *config.Config, logger *log.Logger) *app {
	if logger == nil {
		logger = log.New(os.Stderr, "makan: ", log.LstdFlags)
	}
	return &app{cfg: cfg, logger: logger, now: time.Now}
}

// open binds a tracker to the configured store. The returned func releases the store.
func (a *app) open(ctx context.Context, opts ...tracker.Option) (*tracker.Tracker, func(), error) {
	backend, err := a.cfg.OpenStore(ctx, a.logger)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]tracker.Option{tracker.WithLogger(a.logger), tracker.WithClock(a.now)}, opts...)
	tr, err := tracker.Open(ctx, backend, opts...)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	closeFn := func() {
		if err := backend.Close(); err != nil {
			a.logger.Printf("close store: %v", err)
		}
	}
	return tr, closeFn, nil
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, cfg *config.Config, logger *log.Logger) *cobra.Command {
	a := newApp(cfg, logger)
	var (
		storeFlag string
		dsnFlag   string
	)

	cmd := &cobra.Command{
		Use:     "makan",
		Short:   "Track food, workouts and body weight against daily goals from your terminal.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if storeFlag != "" {
				kind, err := config.ParseStoreKind(storeFlag)
				if err != nil {
					return err
				}
				a.cfg.Store = kind
			}
			if dsnFlag != "" {
				a.cfg.DSN = dsnFlag
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			m := ui.NewModel(ctx, tr)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Storage backend: file|sqlite|postgres|memory (default from MAKAN_STORE)")
	cmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "SQLite path or Postgres URL (default from MAKAN_DSN)")

	cmd.AddCommand(
		newTodayCommand(ctx, a),
		newEatCommand(ctx, a),
		newRemoveCommand(ctx, a),
		newWeightCommand(ctx, a),
		newWorkoutCommand(ctx, a),
		newLibraryCommand(ctx, a),
		newExportCommand(ctx, a),
		newServeCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, cfg, nil)
	return cmd.Execute()
}

// Main is a helper used by cmd/makan/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
