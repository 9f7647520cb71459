package ledger

import (
	"fmt"
	"sort"

	"github.com/faizmokh/makan/internal/nutrition"
)

// StateVersion is the current layout of the persisted state.
const StateVersion = 1

// State is a whole-ledger snapshot: every day plus the food library. Methods
// never modify the receiver; each mutation returns a new State that shares
// untouched days with the old one.
type State struct {
	Version int               `json:"version"`
	Days    map[Date]Day      `json:"days"`
	Library nutrition.Library `json:"library"`
}

// NewState returns an empty ledger seeded with the starter library.
func NewState() State {
	return State{
		Version: StateVersion,
		Days:    map[Date]Day{},
		Library: nutrition.StarterLibrary(),
	}
}

// Day returns the records for date, or an empty Day.
func (s State) Day(date Date) Day {
	return s.Days[date]
}

// Dates lists every date with a Day, oldest first.
func (s State) Dates() []Date {
	dates := make([]Date, 0, len(s.Days))
	for d := range s.Days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// AppendFood prepends entry to the food list of date.
func (s State) AppendFood(date Date, entry FoodEntry) (State, error) {
	if s.hasID(entry.ID) {
		return s, fmt.Errorf("append food %s: %w", entry.ID, ErrDuplicateID)
	}
	day := s.Day(date)
	food := make([]FoodEntry, 0, len(day.Food)+1)
	food = append(food, entry)
	day.Food = append(food, day.Food...)
	return s.withDay(date, day), nil
}

// RemoveFood drops the entry with id from date. A missing id returns s unchanged.
func (s State) RemoveFood(date Date, id string) State {
	day, ok := s.Days[date]
	if !ok {
		return s
	}
	idx := -1
	for i, e := range day.Food {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	food := make([]FoodEntry, 0, len(day.Food)-1)
	food = append(food, day.Food[:idx]...)
	day.Food = append(food, day.Food[idx+1:]...)
	return s.withDay(date, day)
}

// AppendWorkout prepends session to the workout list of date.
func (s State) AppendWorkout(date Date, session WorkoutSession) (State, error) {
	if s.hasID(session.ID) {
		return s, fmt.Errorf("append workout %s: %w", session.ID, ErrDuplicateID)
	}
	day := s.Day(date)
	workouts := make([]WorkoutSession, 0, len(day.Workouts)+1)
	workouts = append(workouts, session)
	day.Workouts = append(workouts, day.Workouts...)
	return s.withDay(date, day), nil
}

// RemoveWorkout drops the session with id from date. A missing id returns s unchanged.
func (s State) RemoveWorkout(date Date, id string) State {
	day, ok := s.Days[date]
	if !ok {
		return s
	}
	idx := -1
	for i, w := range day.Workouts {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	workouts := make([]WorkoutSession, 0, len(day.Workouts)-1)
	workouts = append(workouts, day.Workouts[:idx]...)
	day.Workouts = append(workouts, day.Workouts[idx+1:]...)
	return s.withDay(date, day)
}

// UpsertWeight records lbs for date, replacing any earlier sample.
func (s State) UpsertWeight(date Date, lbs float64) State {
	day := s.Day(date)
	day.Weight = &WeightSample{Date: date, Lbs: lbs}
	return s.withDay(date, day)
}

// ClearWeight removes the weight sample of date, if any.
func (s State) ClearWeight(date Date) State {
	day, ok := s.Days[date]
	if !ok || day.Weight == nil {
		return s
	}
	day.Weight = nil
	return s.withDay(date, day)
}

// SaveLibraryItem inserts or edits a library profile.
func (s State) SaveLibraryItem(item nutrition.LibraryItem) (State, nutrition.LibraryItem, error) {
	lib, saved, err := s.Library.Save(item)
	if err != nil {
		return s, nutrition.LibraryItem{}, err
	}
	s.Library = lib
	return s, saved, nil
}

// DeleteLibraryItem removes a library profile. Logged entries are unaffected.
func (s State) DeleteLibraryItem(id string) State {
	s.Library = s.Library.Delete(id)
	return s
}

func (s State) withDay(date Date, day Day) State {
	days := make(map[Date]Day, len(s.Days)+1)
	for d, v := range s.Days {
		days[d] = v
	}
	days[date] = day
	s.Days = days
	return s
}

func (s State) hasID(id string) bool {
	if id == "" {
		return false
	}
	for _, day := range s.Days {
		for _, e := range day.Food {
			if e.ID == id {
				return true
			}
		}
		for _, w := range day.Workouts {
			if w.ID == id {
				return true
			}
		}
	}
	return false
}
