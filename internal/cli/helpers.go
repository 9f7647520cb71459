package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/summary"
	"github.com/faizmokh/makan/internal/tracker"
)

func resolveDate(tr *tracker.Tracker, dateFlag string) (ledger.Date, error) {
	if dateFlag == "" {
		return tr.Today(), nil
	}
	return ledger.ParseDate(dateFlag)
}

func addDateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "date", "", "Target date in YYYY-MM-DD (default: today)")
}

func formatQuantity(qty float64, unit nutrition.Unit) string {
	value := strconv.FormatFloat(qty, 'f', -1, 64)
	if unit == nutrition.UnitCount {
		return value + " " + plural(qty, "unit", "units")
	}
	return value + " g"
}

func formatEntry(entry ledger.FoodEntry) string {
	return fmt.Sprintf("%s %s: %s, %d kcal [%s]",
		entry.Name, formatQuantity(entry.Quantity, entry.Unit), entry.Macros, entry.Calories(), entry.ID)
}

func formatExercise(ex ledger.Exercise) string {
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "%s %dx%d", ex.Name, ex.Sets, ex.Reps)
	if ex.LoadLbs > 0 {
		fmt.Fprintf(&builder, " @ %s lbs", strconv.FormatFloat(ex.LoadLbs, 'f', -1, 64))
	}
	fmt.Fprintf(&builder, " (%s)", ex.Difficulty)
	return builder.String()
}

func formatSession(session ledger.WorkoutSession) string {
	names := make([]string, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		names = append(names, formatExercise(ex))
	}
	return fmt.Sprintf("%d min, %d kcal burned: %s %q [%s]",
		session.DurationMinutes, session.CaloriesBurned, strings.Join(names, "; "), session.Motivation, session.ID)
}

func formatLibraryItem(item nutrition.LibraryItem) string {
	return fmt.Sprintf("%s (%s): %s, %d kcal [%s]",
		item.Name, item.Basis.Label(), item.Macros, nutrition.Calories(item.Macros), item.ID)
}

func printSummary(out io.Writer, s summary.Summary) {
	fmt.Fprintf(out, "%s\n", s.Date)
	if s.OverBudget {
		fmt.Fprintf(out, "Over budget by %d kcal\n", -s.Remaining)
	} else {
		fmt.Fprintf(out, "Remaining: %d kcal\n", s.Remaining)
	}
	fmt.Fprintf(out, "Budget: %d kcal (goal %d + burned %d)\n", s.Budget, s.Goals.Calories, s.Burned)
	fmt.Fprintf(out, "Consumed: %d kcal (%.0f%%)\n", s.Consumed, s.BudgetUsed)
	for _, p := range s.Macros {
		marker := ""
		if p.Over {
			marker = " over"
		}
		fmt.Fprintf(out, "%-8s %6.1f / %.0f g%s\n", p.Label, p.Consumed, p.Goal, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Food")
	if len(s.Food) == 0 {
		fmt.Fprintln(out, "(no entries)")
	}
	for i, entry := range s.Food {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatEntry(entry))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Workouts")
	if len(s.Workouts) == 0 {
		fmt.Fprintln(out, "(no workouts)")
	}
	for i, session := range s.Workouts {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatSession(session))
	}

	if s.Weight != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Weight: %.1f lbs\n", s.Weight.Lbs)
	}
}

func plural(n float64, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func parseFloatArg(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}
