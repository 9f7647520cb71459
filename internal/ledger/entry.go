package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/faizmokh/makan/internal/nutrition"
)

// Bounds for a body-weight sample in pounds.
const (
	MinWeightLbs = 0
	MaxWeightLbs = 9999.9
)

// NewFoodEntry freezes a validated portion into a ledger entry with a fresh id.
func NewFoodEntry(p nutrition.Portion) (FoodEntry, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return FoodEntry{}, err
	}
	return FoodEntry{
		ID:       nutrition.NewID(),
		Name:     p.Name,
		Quantity: p.Quantity,
		Unit:     p.Unit,
		Macros:   p.Macros,
	}, nil
}

// ParseDifficulty accepts a tag name or its first letter. Empty means moderate.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "m", "mod", "moderate":
		return DifficultyModerate, nil
	case "e", "easy":
		return DifficultyEasy, nil
	case "h", "hard":
		return DifficultyHard, nil
	case "f", "fail":
		return DifficultyFail, nil
	default:
		return "", &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown tag %q (expected easy|moderate|hard|fail)", value)}
	}
}

// Validate checks an exercise before it joins a workout.
func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return &ValidationError{Field: "exercise name", Reason: "is required"}
	}
	if e.Sets < 0 {
		return &ValidationError{Field: "sets", Reason: "must be >= 0"}
	}
	if e.Reps < 0 {
		return &ValidationError{Field: "reps", Reason: "must be >= 0"}
	}
	if err := nutrition.NonNegative("load", e.LoadLbs); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(e.Difficulty)); err != nil {
		return err
	}
	return nil
}

// ValidateWeight enforces 0 < lbs <= MaxWeightLbs.
func ValidateWeight(lbs float64) error {
	if math.IsNaN(lbs) || math.IsInf(lbs, 0) || lbs <= MinWeightLbs || lbs > MaxWeightLbs {
		return &ValidationError{Field: "weight", Reason: fmt.Sprintf("must be between %d and %.1f lbs", MinWeightLbs, MaxWeightLbs)}
	}
	return nil
}
