package ledger

import (
	"github.com/faizmokh/makan/internal/nutrition"
)

// FoodEntry is a logged food with its macros fully resolved at creation time.
// It holds no reference to the library item it may have come from.
type FoodEntry struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Quantity float64        `json:"quantity"`
	Unit     nutrition.Unit `json:"unit"`
	nutrition.Macros
}

// Calories is the Atwater energy of the entry.
func (e FoodEntry) Calories() int {
	return nutrition.Calories(e.Macros)
}

// Difficulty is how hard an exercise felt.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyFail     Difficulty = "fail"
)

// Difficulties lists the accepted tags in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard, DifficultyFail}

// Exercise is one movement within a workout.
type Exercise struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Sets       int        `json:"sets"`
	Reps       int        `json:"reps"`
	LoadLbs    float64    `json:"load_lbs"`
	Difficulty Difficulty `json:"difficulty"`
}

// WorkoutSession is a finished workout. Motivation is picked once when the
// session is committed and never changes.
type WorkoutSession struct {
	ID              string     `json:"id"`
	DurationMinutes int        `json:"duration_minutes"`
	CaloriesBurned  int        `json:"calories_burned"`
	Exercises       []Exercise `json:"exercises"`
	Motivation      string     `json:"motivation"`
}

// WeightSample is the body weight recorded for a day.
type WeightSample struct {
	Date Date    `json:"date"`
	Lbs  float64 `json:"lbs"`
}

// Day holds everything logged on one calendar date. Lists are newest first.
type Day struct {
	Food     []FoodEntry      `json:"food"`
	Workouts []WorkoutSession `json:"workouts"`
	Weight   *WeightSample    `json:"weight,omitempty"`
}

// IsEmpty reports whether nothing has been logged.
func (d Day) IsEmpty() bool {
	return len(d.Food) == 0 && len(d.Workouts) == 0 && d.Weight == nil
}
