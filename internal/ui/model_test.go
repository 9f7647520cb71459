package ui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/store"
	"github.com/faizmokh/makan/internal/tracker"
	"github.com/faizmokh/makan/internal/workout"
)

const quoteSeed = 11

func newTestModel(t *testing.T) Model {
	t.Helper()
	now := time.Date(2025, time.November, 2, 12, 0, 0, 0, time.Local)
	tr, err := tracker.Open(context.Background(), store.NewMemory(),
		tracker.WithLogger(log.New(io.Discard, "", 0)),
		tracker.WithClock(func() time.Time { return now }),
		tracker.WithPicker(workout.NewSeededPicker(quoteSeed)),
	)
	if err != nil {
		t.Fatalf("tracker.Open: %v", err)
	}
	m := NewModel(context.Background(), tr)
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return settle(t, m, m.Init())
}

// settle runs cmd and feeds every resulting message back into the model.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func typeLine(t *testing.T, m Model, text string) Model {
	t.Helper()
	m = press(t, m, text)
	return press(t, m, "enter")
}

func TestInitLoadsToday(t *testing.T) {
	m := newTestModel(t)
	if m.loading {
		t.Fatalf("still loading after init")
	}
	if m.currentDate != "2025-11-02" {
		t.Fatalf("current date = %s", m.currentDate)
	}
	if m.summary.Remaining != nutrition.GoalCalories {
		t.Fatalf("remaining = %d", m.summary.Remaining)
	}
	if !strings.Contains(m.View(), "2450 kcal remaining") {
		t.Fatalf("view missing budget:\n%s", m.View())
	}
}

func TestAddFoodFromLibrary(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	if m.mode != modeAddFood {
		t.Fatalf("mode = %d, want add food", m.mode)
	}
	m = typeLine(t, m, "@salmon 200")

	if m.mode != modeNormal {
		t.Fatalf("mode = %d after submit", m.mode)
	}
	if len(m.summary.Food) != 1 {
		t.Fatalf("food = %+v", m.summary.Food)
	}
	entry := m.summary.Food[0]
	if entry.Name != "Salmon" || entry.Quantity != 200 || entry.Protein != 46.6 || entry.Fat != 24 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if !strings.Contains(m.statusLine, "Logged Salmon") {
		t.Fatalf("status = %q", m.statusLine)
	}
}

func TestAddManualFood(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "Nasi Lemak 10/20/5/3")

	if m.errorLine != "" {
		t.Fatalf("error: %s", m.errorLine)
	}
	if m.summary.Consumed != 165 || m.summary.Remaining != 2285 {
		t.Fatalf("consumed=%d remaining=%d", m.summary.Consumed, m.summary.Remaining)
	}
	if got := m.summary.Food[0]; got.Name != "Nasi Lemak" || got.Quantity != 100 || got.Unit != nutrition.UnitGrams {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestAddFoodRejectsBadInput(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "Mystery 1/2")

	if m.mode != modeAddFood {
		t.Fatalf("mode = %d, want to stay in add food", m.mode)
	}
	if m.errorLine == "" {
		t.Fatalf("expected error line")
	}
	if len(m.summary.Food) != 0 {
		t.Fatalf("bad line was logged")
	}

	m = press(t, m, "esc")
	if m.mode != modeNormal || m.statusLine != "Cancelled." {
		t.Fatalf("mode=%d status=%q after esc", m.mode, m.statusLine)
	}
}

func TestUnknownLibraryItemShowsError(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "@durian")

	if !strings.Contains(m.errorLine, "not found") {
		t.Fatalf("error = %q", m.errorLine)
	}
}

func TestWeightSetAndClear(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "w")
	m = typeLine(t, m, "150.5")
	if m.summary.Weight == nil || m.summary.Weight.Lbs != 150.5 {
		t.Fatalf("weight = %+v", m.summary.Weight)
	}

	m = press(t, m, "w")
	if m.input.Value() != "150.5" {
		t.Fatalf("weight prompt not prefilled: %q", m.input.Value())
	}
	m = typeLine(t, m, "abc")
	if m.errorLine == "" {
		t.Fatalf("expected error for non-numeric weight")
	}
	m.input.SetValue("")
	m = press(t, m, "enter")
	if m.summary.Weight != nil {
		t.Fatalf("weight not cleared: %+v", m.summary.Weight)
	}
	if m.statusLine != "Weight cleared." {
		t.Fatalf("status = %q", m.statusLine)
	}
}

func TestWorkoutFlow(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "x")
	if m.mode != modeWorkout || m.draft == nil {
		t.Fatalf("workout mode not started")
	}

	m = press(t, m, "enter")
	if m.errorLine == "" || m.mode != modeWorkout {
		t.Fatalf("empty draft should not finish")
	}

	m = typeLine(t, m, "Squat:3x5@135:h")
	m = typeLine(t, m, "Plank")
	if m.draft.Len() != 2 {
		t.Fatalf("draft len = %d", m.draft.Len())
	}

	m = press(t, m, "enter")
	if m.mode != modeWorkoutDuration || m.input.Value() != "30" {
		t.Fatalf("mode=%d value=%q", m.mode, m.input.Value())
	}
	m = press(t, m, "enter")

	if len(m.summary.Workouts) != 1 {
		t.Fatalf("workouts = %+v", m.summary.Workouts)
	}
	session := m.summary.Workouts[0]
	if session.CaloriesBurned != 191 || len(session.Exercises) != 2 {
		t.Fatalf("session = %+v", session)
	}
	if session.Exercises[0].Difficulty != ledger.DifficultyHard || session.Exercises[0].LoadLbs != 135 {
		t.Fatalf("squat = %+v", session.Exercises[0])
	}
	if want := workout.NewSeededPicker(quoteSeed).Pick(); m.quote != want {
		t.Fatalf("quote = %q, want %q", m.quote, want)
	}
	if m.summary.Budget != nutrition.GoalCalories+191 {
		t.Fatalf("budget = %d", m.summary.Budget)
	}
	if m.draft != nil {
		t.Fatalf("draft kept after commit")
	}
}

func TestWorkoutEscDiscardsDraft(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "x")
	m = typeLine(t, m, "Row")
	draft := m.draft
	m = press(t, m, "esc")

	if draft.State() != workout.DraftDiscarded {
		t.Fatalf("draft state = %s", draft.State())
	}
	if len(m.summary.Workouts) != 0 {
		t.Fatalf("discarded workout was saved")
	}
}

func TestDeleteSelectedRow(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "@banana")
	m = press(t, m, "a")
	m = typeLine(t, m, "@egg whites 150")

	// Newest first: Egg Whites, then Banana.
	m = press(t, m, "j")
	if m.selected != 1 {
		t.Fatalf("selected = %d", m.selected)
	}

	m = press(t, m, "d")
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode = %d", m.mode)
	}
	m = press(t, m, "n")
	if len(m.summary.Food) != 2 {
		t.Fatalf("cancelled delete removed food")
	}

	m = press(t, m, "d")
	m = press(t, m, "y")
	if len(m.summary.Food) != 1 || m.summary.Food[0].Name != "Egg Whites" {
		t.Fatalf("food after delete = %+v", m.summary.Food)
	}
	if m.selected != 0 {
		t.Fatalf("selection not clamped: %d", m.selected)
	}
	if m.statusLine != "Deleted Banana." {
		t.Fatalf("status = %q", m.statusLine)
	}
}

func TestNavigateDays(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "@banana")

	m = press(t, m, "left")
	if m.currentDate != "2025-11-01" {
		t.Fatalf("date = %s", m.currentDate)
	}
	if len(m.summary.Food) != 0 {
		t.Fatalf("previous day shows today's food")
	}

	m = press(t, m, "t")
	if m.currentDate != "2025-11-02" || len(m.summary.Food) != 1 {
		t.Fatalf("today not restored: %s %+v", m.currentDate, m.summary.Food)
	}
}

func TestStaleDayIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "left")

	next, _ := m.Update(dayLoadedMsg{date: "2025-11-02"})
	got := next.(Model)
	if got.currentDate != "2025-11-01" {
		t.Fatalf("stale load changed date to %s", got.currentDate)
	}
}

func TestViewFlagsOverBudget(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	m = typeLine(t, m, "Feast 0/0/300")

	if !m.summary.OverBudget {
		t.Fatalf("expected over budget")
	}
	if !strings.Contains(m.View(), "250 kcal over budget") {
		t.Fatalf("view:\n%s", m.View())
	}
}

func TestParseFoodLine(t *testing.T) {
	parsed, err := parseFoodLine("@Chicken Breast 150g")
	if err != nil {
		t.Fatalf("parseFoodLine: %v", err)
	}
	if !parsed.fromLibrary || parsed.ref != "Chicken Breast" || parsed.quantity == nil || *parsed.quantity != 150 {
		t.Fatalf("unexpected parse: %+v", parsed)
	}

	parsed, err = parseFoodLine("Roti 2u 30/6/8")
	if err != nil {
		t.Fatalf("parseFoodLine: %v", err)
	}
	portion := parsed.portion()
	if portion.Name != "Roti" || portion.Quantity != 2 || portion.Unit != nutrition.UnitCount {
		t.Fatalf("unexpected portion: %+v", portion)
	}
	if portion.Carbs != 30 || portion.Protein != 6 || portion.Fat != 8 || portion.Fiber != 0 {
		t.Fatalf("unexpected macros: %+v", portion.Macros)
	}

	for _, bad := range []string{"", "   ", "Tea 1/x/3", "Tea 1/2/3/4/5"} {
		if _, err := parseFoodLine(bad); err == nil {
			t.Fatalf("parseFoodLine(%q) accepted", bad)
		}
	}
}
