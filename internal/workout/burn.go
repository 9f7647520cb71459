// Package workout estimates workout energy use and builds workout sessions.
package workout

import "math"

// MET and body mass used for every burn estimate.
const (
	MET        = 6.0
	BodyMassKg = 63.5
)

// DefaultDurationMinutes is the duration offered when finishing a workout.
const DefaultDurationMinutes = 30

// CaloriesBurned estimates kcal for a workout of the given length,
// rounded half away from zero.
func CaloriesBurned(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(MET * BodyMassKg * float64(minutes) / 60))
}
