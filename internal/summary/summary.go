// Package summary derives daily totals and goal progress from the ledger.
package summary

import (
	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
)

// Totals sums the macros of entries.
func Totals(entries []ledger.FoodEntry) nutrition.Macros {
	var total nutrition.Macros
	for _, e := range entries {
		total = total.Add(e.Macros)
	}
	return total
}

// CaloriesConsumed is the Atwater energy of the summed macros.
func CaloriesConsumed(entries []ledger.FoodEntry) int {
	return nutrition.Calories(Totals(entries))
}

// CaloriesBurned sums the stored burn of each session.
func CaloriesBurned(sessions []ledger.WorkoutSession) int {
	total := 0
	for _, s := range sessions {
		total += s.CaloriesBurned
	}
	return total
}

// AdjustedBudget is the calorie goal plus what was burned.
func AdjustedBudget(goal, burned int) int {
	return goal + burned
}

// Remaining is budget minus consumed. It goes negative when over budget.
func Remaining(budget, consumed int) int {
	return budget - consumed
}

// Fraction is min(1, consumed/goal). A goal of zero or less yields 0.
func Fraction(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	if f := consumed / goal; f < 1 {
		return f
	}
	return 1
}

// Progress is one goal bar.
type Progress struct {
	Label    string  `json:"label"`
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Fraction float64 `json:"fraction"`
	Over     bool    `json:"over"`
}

func newProgress(label string, consumed, goal float64) Progress {
	return Progress{
		Label:    label,
		Consumed: consumed,
		Goal:     goal,
		Fraction: Fraction(consumed, goal),
		Over:     goal > 0 && consumed > goal,
	}
}

// Summary is everything the daily view shows. OverBudget is set when
// consumption exceeds the adjusted budget; BudgetUsed is consumed/budget as
// an unclamped percentage.
type Summary struct {
	Date       ledger.Date             `json:"date"`
	Goals      nutrition.Goals         `json:"goals"`
	Totals     nutrition.Macros        `json:"totals"`
	Consumed   int                     `json:"consumed"`
	Burned     int                     `json:"burned"`
	Budget     int                     `json:"budget"`
	Remaining  int                     `json:"remaining"`
	OverBudget bool                    `json:"over_budget"`
	BudgetUsed float64                 `json:"budget_used_pct"`
	Calories   Progress                `json:"calories"`
	Macros     []Progress              `json:"macros"`
	Food       []ledger.FoodEntry      `json:"food"`
	Workouts   []ledger.WorkoutSession `json:"workouts"`
	Weight     *ledger.WeightSample    `json:"weight,omitempty"`
}

func budgetUsed(consumed, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(consumed) / float64(budget) * 100
}

// ForDay summarises date against the default goals.
func ForDay(state ledger.State, date ledger.Date) Summary {
	return ForDayWithGoals(state, date, nutrition.DailyGoals())
}

// ForDayWithGoals summarises date against goals.
func ForDayWithGoals(state ledger.State, date ledger.Date, goals nutrition.Goals) Summary {
	day := state.Day(date)
	totals := Totals(day.Food)
	consumed := nutrition.Calories(totals)
	burned := CaloriesBurned(day.Workouts)
	budget := AdjustedBudget(goals.Calories, burned)

	remaining := Remaining(budget, consumed)

	return Summary{
		Date:       date,
		Goals:      goals,
		Totals:     totals,
		Consumed:   consumed,
		Burned:     burned,
		Budget:     budget,
		Remaining:  remaining,
		OverBudget: remaining < 0,
		BudgetUsed: budgetUsed(consumed, budget),
		Calories:   newProgress("Calories", float64(consumed), float64(budget)),
		Macros: []Progress{
			newProgress("Carbs", totals.Carbs, goals.Carbs),
			newProgress("Protein", totals.Protein, goals.Protein),
			newProgress("Fat", totals.Fat, goals.Fat),
			newProgress("Fiber", totals.Fiber, goals.Fiber),
		},
		Food:     day.Food,
		Workouts: day.Workouts,
		Weight:   day.Weight,
	}
}
