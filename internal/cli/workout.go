package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/tracker"
	"github.com/faizmokh/makan/internal/workout"
)

func newWorkoutCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag      string
		durationFlag  int
		exerciseFlags []string
		seedFlag      uint64
	)

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log a finished workout session.",
		Long: "workout builds a session from one or more --exercise specs and logs it with an estimated burn.\n" +
			"Spec format: name[:SETSxREPS[@LBS]][:difficulty], e.g. \"Squat:3x5@135:hard\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(exerciseFlags) == 0 {
				return fmt.Errorf("at least one --exercise is required")
			}

			draft := workout.NewDraft()
			for _, spec := range exerciseFlags {
				ex, err := workout.ParseSpec(spec)
				if err != nil {
					return err
				}
				if _, err := draft.Add(ex); err != nil {
					return err
				}
			}

			var opts []tracker.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, tracker.WithPicker(workout.NewSeededPicker(seedFlag)))
			}
			tr, closeFn, err := a.open(ctx, opts...)
			if err != nil {
				return err
			}
			defer closeFn()

			date, err := resolveDate(tr, dateFlag)
			if err != nil {
				return err
			}
			session, err := tr.FinishWorkout(ctx, date, draft, durationFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged workout: %d min, %d kcal burned\n", session.DurationMinutes, session.CaloriesBurned)
			for i, ex := range session.Exercises {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatExercise(ex))
			}
			fmt.Fprintf(out, "%s\n", session.Motivation)
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().IntVar(&durationFlag, "duration", workout.DefaultDurationMinutes, "Session length in minutes")
	cmd.Flags().StringArrayVar(&exerciseFlags, "exercise", nil, "Exercise spec name[:SETSxREPS[@LBS]][:difficulty] (repeatable)")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for the motivation quote (default: random)")

	cmd.AddCommand(newWorkoutRemoveCommand(ctx, a))

	return cmd
}

func newWorkoutRemoveCommand(ctx context.Context, a *app) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "remove <session id>",
		Short: "Delete a workout session by id.",
		Args:  cobra.ExactArgs(1),
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
			removed, err := tr.RemoveWorkout(ctx, date, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no workout %s on %s", args[0], date)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed workout %s\n", args[0])
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)

	return cmd
}
