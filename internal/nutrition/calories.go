package nutrition

import "math"

// Atwater factors in kcal per gram.
const (
	KcalPerGramCarbs   = 4
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
)

// Calories converts macros to kilocalories, rounded half away from zero.
// Fiber is not counted.
func Calories(m Macros) int {
	kcal := finite(m.Carbs)*KcalPerGramCarbs +
		finite(m.Protein)*KcalPerGramProtein +
		finite(m.Fat)*KcalPerGramFat
	return int(math.Round(kcal))
}

// Daily targets. These are fixed for the single user of the tracker.
const (
	GoalCalories = 2450
	GoalCarbs    = 305.0
	GoalProtein  = 125.0
	GoalFat      = 80.0
	GoalFiber    = 30.0
)

// Goals is the daily target set.
type Goals struct {
	Calories int `json:"calories"`
	Macros
}

// DailyGoals returns the fixed daily targets.
func DailyGoals() Goals {
	return Goals{
		Calories: GoalCalories,
		Macros: Macros{
			Carbs:   GoalCarbs,
			Protein: GoalProtein,
			Fat:     GoalFat,
			Fiber:   GoalFiber,
		},
	}
}
