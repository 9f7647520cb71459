package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/summary"
)

// Section renders one day as Markdown lines, heading first.
func Section(sum summary.Summary) []string {
	lines := []string{sectionHeading(sum.Date)}

	for _, entry := range sum.Food {
		lines = append(lines, "- "+formatFood(entry))
	}
	for _, session := range sum.Workouts {
		lines = append(lines, "- "+formatSession(session))
	}
	if sum.Weight != nil {
		lines = append(lines, fmt.Sprintf("- weight: %.1f lbs", sum.Weight.Lbs))
	}

	status := "remaining"
	remaining := sum.Remaining
	if sum.OverBudget {
		status = "over"
		remaining = -remaining
	}
	lines = append(lines, fmt.Sprintf("- total: %d / %d kcal, %d %s (%s)",
		sum.Consumed, sum.Budget, remaining, status, sum.Totals))
	return lines
}

func sectionHeading(date ledger.Date) string {
	return "## " + date.String()
}

func monthHeader(t time.Time) string {
	return fmt.Sprintf("# %s %04d", t.Month().String(), t.Year())
}

func formatFood(entry ledger.FoodEntry) string {
	qty := strconv.FormatFloat(entry.Quantity, 'f', -1, 64)
	unit := " g"
	if entry.Unit == nutrition.UnitCount {
		unit = " unit"
		if entry.Quantity != 1 {
			unit = " units"
		}
	}
	return fmt.Sprintf("food: %s %s%s, %d kcal (%s)", entry.Name, qty, unit, entry.Calories(), entry.Macros)
}

func formatSession(session ledger.WorkoutSession) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "workout: %d min, %d kcal burned", session.DurationMinutes, session.CaloriesBurned)
	for i, ex := range session.Exercises {
		if i == 0 {
			builder.WriteString(": ")
		} else {
			builder.WriteString("; ")
		}
		fmt.Fprintf(&builder, "%s %dx%d", ex.Name, ex.Sets, ex.Reps)
		if ex.LoadLbs > 0 {
			fmt.Fprintf(&builder, " @ %s lbs", strconv.FormatFloat(ex.LoadLbs, 'f', -1, 64))
		}
		fmt.Fprintf(&builder, " (%s)", ex.Difficulty)
	}
	return builder.String()
}
