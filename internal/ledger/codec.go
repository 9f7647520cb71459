package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/faizmokh/makan/internal/nutrition"
)

// Encode serialises the whole state as indented JSON.
func Encode(s State) ([]byte, error) {
	if s.Version == 0 {
		s.Version = StateVersion
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a state blob. Blobs from a newer release fail with
// ErrUnsupportedVersion; a missing version is read as the current one.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if s.Version > StateVersion {
		return State{}, fmt.Errorf("decode state: version %d: %w", s.Version, ErrUnsupportedVersion)
	}
	if s.Version == 0 {
		s.Version = StateVersion
	}
	return s, nil
}

// UnmarshalJSON reads numeric fields leniently: numeric strings are parsed
// and anything else non-numeric becomes zero.
func (e *FoodEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string                 `json:"id"`
		Name     string                 `json:"name"`
		Quantity nutrition.LenientFloat `json:"quantity"`
		Unit     string                 `json:"unit"`
		Carbs    nutrition.LenientFloat `json:"carbs"`
		Protein  nutrition.LenientFloat `json:"protein"`
		Fat      nutrition.LenientFloat `json:"fat"`
		Fiber    nutrition.LenientFloat `json:"fiber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	unit := nutrition.Unit(raw.Unit)
	if parsed, err := nutrition.ParseUnit(raw.Unit); err == nil {
		unit = parsed
	} else if raw.Unit == "" {
		unit = nutrition.UnitGrams
	}
	*e = FoodEntry{
		ID:       raw.ID,
		Name:     raw.Name,
		Quantity: float64(raw.Quantity),
		Unit:     unit,
		Macros: nutrition.Macros{
			Carbs:   float64(raw.Carbs),
			Protein: float64(raw.Protein),
			Fat:     float64(raw.Fat),
			Fiber:   float64(raw.Fiber),
		},
	}
	return nil
}

// UnmarshalJSON reads the counters leniently and rounds them to whole
// numbers.
func (w *WorkoutSession) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              string                 `json:"id"`
		DurationMinutes nutrition.LenientFloat `json:"duration_minutes"`
		CaloriesBurned  nutrition.LenientFloat `json:"calories_burned"`
		Exercises       []Exercise             `json:"exercises"`
		Motivation      string                 `json:"motivation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = WorkoutSession{
		ID:              raw.ID,
		DurationMinutes: raw.DurationMinutes.Int(),
		CaloriesBurned:  raw.CaloriesBurned.Int(),
		Exercises:       raw.Exercises,
		Motivation:      raw.Motivation,
	}
	return nil
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string                 `json:"id"`
		Name       string                 `json:"name"`
		Sets       nutrition.LenientFloat `json:"sets"`
		Reps       nutrition.LenientFloat `json:"reps"`
		LoadLbs    nutrition.LenientFloat `json:"load_lbs"`
		Difficulty Difficulty             `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Exercise{
		ID:         raw.ID,
		Name:       raw.Name,
		Sets:       raw.Sets.Int(),
		Reps:       raw.Reps.Int(),
		LoadLbs:    float64(raw.LoadLbs),
		Difficulty: raw.Difficulty,
	}
	return nil
}

func (w *WeightSample) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date Date                   `json:"date"`
		Lbs  nutrition.LenientFloat `json:"lbs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = WeightSample{Date: raw.Date, Lbs: float64(raw.Lbs)}
	return nil
}
