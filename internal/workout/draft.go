package workout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
)

var (
	// ErrDraftClosed is returned by any call on a committed or discarded draft.
	ErrDraftClosed = errors.New("workout draft is closed")
	// ErrDraftEmpty is returned when finishing a draft with no exercises.
	ErrDraftEmpty = errors.New("workout draft has no exercises")
	// ErrExerciseNotFound is returned when an exercise id is not in the draft.
	ErrExerciseNotFound = errors.New("exercise not found in draft")
)

// DraftState is where a draft sits in its lifecycle.
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftBuilding
	DraftCommitted
	DraftDiscarded
)

func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftBuilding:
		return "building"
	case DraftCommitted:
		return "committed"
	case DraftDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("DraftState(%d)", int(s))
	}
}

// NewExercise returns an exercise with the default 1x10 at bodyweight, moderate.
func NewExercise(name string) ledger.Exercise {
	return ledger.Exercise{
		Name:       strings.TrimSpace(name),
		Sets:       1,
		Reps:       10,
		Difficulty: ledger.DifficultyModerate,
	}
}

// Draft is an in-progress workout. It is not safe for concurrent use.
type Draft struct {
	state     DraftState
	exercises []ledger.Exercise
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// State reports the lifecycle state.
func (d *Draft) State() DraftState {
	return d.state
}

// Exercises returns a copy of the exercises in insertion order.
func (d *Draft) Exercises() []ledger.Exercise {
	out := make([]ledger.Exercise, len(d.exercises))
	copy(out, d.exercises)
	return out
}

// Len is the number of exercises.
func (d *Draft) Len() int {
	return len(d.exercises)
}

// Add validates ex and appends it, assigning an id when it has none.
func (d *Draft) Add(ex ledger.Exercise) (ledger.Exercise, error) {
	if d.closed() {
		return ledger.Exercise{}, ErrDraftClosed
	}
	ex, err := normalize(ex)
	if err != nil {
		return ledger.Exercise{}, err
	}
	if ex.ID == "" {
		ex.ID = nutrition.NewID()
	}
	d.exercises = append(d.exercises, ex)
	d.state = DraftBuilding
	return ex, nil
}

// Update replaces the exercise with the same id.
func (d *Draft) Update(ex ledger.Exercise) error {
	if d.closed() {
		return ErrDraftClosed
	}
	idx := d.index(ex.ID)
	if idx < 0 {
		return fmt.Errorf("update %s: %w", ex.ID, ErrExerciseNotFound)
	}
	ex, err := normalize(ex)
	if err != nil {
		return err
	}
	d.exercises[idx] = ex
	return nil
}

// Remove drops the exercise with id. Removing the last one returns the draft to empty.
func (d *Draft) Remove(id string) error {
	if d.closed() {
		return ErrDraftClosed
	}
	idx := d.index(id)
	if idx < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrExerciseNotFound)
	}
	d.exercises = append(d.exercises[:idx:idx], d.exercises[idx+1:]...)
	if len(d.exercises) == 0 {
		d.state = DraftEmpty
	}
	return nil
}

// Finish builds the session, computes its burn and picks a quote, then hands
// it to commit. The draft is committed only when commit succeeds; on error it
// stays open so the caller can retry or discard.
func (d *Draft) Finish(minutes int, picker *Picker, commit func(ledger.WorkoutSession) error) (ledger.WorkoutSession, error) {
	if d.closed() {
		return ledger.WorkoutSession{}, ErrDraftClosed
	}
	if d.state == DraftEmpty {
		return ledger.WorkoutSession{}, ErrDraftEmpty
	}
	if minutes < 0 {
		return ledger.WorkoutSession{}, &ledger.ValidationError{Field: "duration", Reason: "must be >= 0"}
	}
	if picker == nil {
		picker = NewPicker(nil)
	}

	session := ledger.WorkoutSession{
		ID:              nutrition.NewID(),
		DurationMinutes: minutes,
		CaloriesBurned:  CaloriesBurned(minutes),
		Exercises:       d.Exercises(),
		Motivation:      picker.Pick(),
	}
	if commit != nil {
		if err := commit(session); err != nil {
			return ledger.WorkoutSession{}, err
		}
	}
	d.state = DraftCommitted
	d.exercises = nil
	return session, nil
}

// Discard abandons the draft.
func (d *Draft) Discard() error {
	if d.closed() {
		return ErrDraftClosed
	}
	d.state = DraftDiscarded
	d.exercises = nil
	return nil
}

func (d *Draft) closed() bool {
	return d.state == DraftCommitted || d.state == DraftDiscarded
}

func (d *Draft) index(id string) int {
	if id == "" {
		return -1
	}
	for i, ex := range d.exercises {
		if ex.ID == id {
			return i
		}
	}
	return -1
}

func normalize(ex ledger.Exercise) (ledger.Exercise, error) {
	ex.Name = strings.TrimSpace(ex.Name)
	if err := ex.Validate(); err != nil {
		return ledger.Exercise{}, err
	}
	difficulty, err := ledger.ParseDifficulty(string(ex.Difficulty))
	if err != nil {
		return ledger.Exercise{}, err
	}
	ex.Difficulty = difficulty
	return ex, nil
}
