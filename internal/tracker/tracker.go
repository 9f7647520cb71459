// Package tracker owns the live ledger snapshot and persists every change.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/store"
	"github.com/faizmokh/makan/internal/summary"
	"github.com/faizmokh/makan/internal/workout"
)

// Tracker serializes mutations. Each one derives the next snapshot, saves it,
// and only then replaces the current one, so a failed save leaves state as it was.
type Tracker struct {
	mu     sync.Mutex
	store  store.Store
	state  ledger.State
	logger *log.Logger
	now    func() time.Time
	picker *workout.Picker
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithPicker sets the quote picker used when finishing workouts.
func WithPicker(p *workout.Picker) Option {
	return func(t *Tracker) {
		if p != nil {
			t.picker = p
		}
	}
}

// Open loads the state from st. A missing blob starts a fresh ledger with the
// starter library; a corrupt one is logged and replaced the same way. A blob
// from a newer release is an error.
func Open(ctx context.Context, st store.Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:  st,
		logger: log.New(os.Stderr, "makan: ", log.LstdFlags),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.picker == nil {
		t.picker = workout.NewPicker(nil)
	}

	data, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		t.logger.Printf("no saved state under %s, starting with the starter library", store.Key)
		t.state = ledger.NewState()
		return t, nil
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	}

	state, err := ledger.Decode(data)
	switch {
	case errors.Is(err, ledger.ErrUnsupportedVersion):
		return nil, fmt.Errorf("state under %s%s comes from a newer makan; upgrade to read it: %w", store.Key, location(st), err)
	case err != nil:
		t.logger.Printf("saved state is unreadable, starting over: %v", err)
		t.state = ledger.NewState()
	default:
		t.state = state
	}
	return t, nil
}

// location names the file behind st, when there is one.
func location(st store.Store) string {
	if f, ok := st.(interface{ Path() string }); ok {
		return " (" + f.Path() + ")"
	}
	return ""
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (t *Tracker) Snapshot() ledger.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Today is the local calendar date according to the tracker's clock.
func (t *Tracker) Today() ledger.Date {
	return ledger.DateOf(t.now())
}

// Summary derives the day view for date.
func (t *Tracker) Summary(date ledger.Date) summary.Summary {
	return summary.ForDay(t.Snapshot(), date)
}

// Library returns the current food library.
func (t *Tracker) Library() nutrition.Library {
	return t.Snapshot().Library
}

// LogFood validates portion and records it on date.
func (t *Tracker) LogFood(ctx context.Context, date ledger.Date, portion nutrition.Portion) (ledger.FoodEntry, error) {
	entry, err := ledger.NewFoodEntry(portion)
	if err != nil {
		return ledger.FoodEntry{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	next, err := t.state.AppendFood(date, entry)
	if err != nil {
		return ledger.FoodEntry{}, err
	}
	if err := t.commit(ctx, next); err != nil {
		return ledger.FoodEntry{}, err
	}
	return entry, nil
}

// LogFromLibrary scales the library item matching ref (id or name) and logs it.
// A nil qty uses the item's basis quantity.
func (t *Tracker) LogFromLibrary(ctx context.Context, date ledger.Date, ref string, qty *float64) (ledger.FoodEntry, error) {
	item, err := t.Library().Find(ref)
	if err != nil {
		return ledger.FoodEntry{}, err
	}
	portion := nutrition.FromLibrary(item)
	if qty != nil {
		portion = portion.WithQuantity(*qty)
	}
	return t.LogFood(ctx, date, portion)
}

// RemoveFood deletes a food entry. It reports false, without saving, when
// the id is not on that date.
func (t *Tracker) RemoveFood(ctx context.Context, date ledger.Date, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	before := len(t.state.Day(date).Food)
	next := t.state.RemoveFood(date, id)
	if len(next.Day(date).Food) == before {
		return false, nil
	}
	return true, t.commit(ctx, next)
}

// FinishWorkout commits draft as a session on date.
func (t *Tracker) FinishWorkout(ctx context.Context, date ledger.Date, draft *workout.Draft, minutes int) (ledger.WorkoutSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return draft.Finish(minutes, t.picker, func(session ledger.WorkoutSession) error {
		next, err := t.state.AppendWorkout(date, session)
		if err != nil {
			return err
		}
		return t.commit(ctx, next)
	})
}

// RemoveWorkout deletes a session, reporting whether it existed.
func (t *Tracker) RemoveWorkout(ctx context.Context, date ledger.Date, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	before := len(t.state.Day(date).Workouts)
	next := t.state.RemoveWorkout(date, id)
	if len(next.Day(date).Workouts) == before {
		return false, nil
	}
	return true, t.commit(ctx, next)
}

// LogWeight records the body weight for date, replacing any earlier sample.
func (t *Tracker) LogWeight(ctx context.Context, date ledger.Date, lbs float64) (ledger.WeightSample, error) {
	if err := ledger.ValidateWeight(lbs); err != nil {
		return ledger.WeightSample{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	next := t.state.UpsertWeight(date, lbs)
	if err := t.commit(ctx, next); err != nil {
		return ledger.WeightSample{}, err
	}
	return *next.Day(date).Weight, nil
}

// ClearWeight removes the weight sample for date.
func (t *Tracker) ClearWeight(ctx context.Context, date ledger.Date) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Day(date).Weight == nil {
		return nil
	}
	return t.commit(ctx, t.state.ClearWeight(date))
}

// SaveLibraryItem inserts or edits a library item.
func (t *Tracker) SaveLibraryItem(ctx context.Context, item nutrition.LibraryItem) (nutrition.LibraryItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, saved, err := t.state.SaveLibraryItem(item)
	if err != nil {
		return nutrition.LibraryItem{}, err
	}
	if err := t.commit(ctx, next); err != nil {
		return nutrition.LibraryItem{}, err
	}
	return saved, nil
}

// DeleteLibraryItem removes a library item, reporting whether it existed.
func (t *Tracker) DeleteLibraryItem(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.state.Library.Get(id); !ok {
		return false, nil
	}
	return true, t.commit(ctx, t.state.DeleteLibraryItem(id))
}

// commit must be called with t.mu held.
func (t *Tracker) commit(ctx context.Context, next ledger.State) error {
	data, err := ledger.Encode(next)
	if err != nil {
		return err
	}
	if err := t.store.Save(ctx, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	t.state = next
	return nil
}
