package journal

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/faizmokh/makan/internal/files"
	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
)

func newWriter(t *testing.T) (*Writer, *files.Manager) {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewWriter(mgr), mgr
}

func salmon() ledger.FoodEntry {
	return ledger.FoodEntry{
		ID: "a", Name: "Salmon", Quantity: 200, Unit: nutrition.UnitGrams,
		Macros: nutrition.Macros{Protein: 46.6, Fat: 24},
	}
}

func TestExportCreatesMonthFile(t *testing.T) {
	writer, mgr := newWriter(t)

	state, err := ledger.NewState().AppendFood("2025-11-02", salmon())
	if err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	state = state.UpsertWeight("2025-11-01", 150)

	months, err := writer.Export(context.Background(), state, "", "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(months) != 1 || len(months[0].Dates) != 2 {
		t.Fatalf("months = %+v", months)
	}

	path := mgr.JournalPath(ledger.Date("2025-11-02").Time())
	if months[0].Path != path {
		t.Fatalf("path = %q, want %q", months[0].Path, path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := strings.TrimLeft(`
# November 2025

## 2025-11-01
- weight: 150.0 lbs
- total: 0 / 2450 kcal, 2450 remaining (0.0c 0.0p 0.0f 0.0fib)

## 2025-11-02
- food: Salmon 200 g, 402 kcal (0.0c 46.6p 24.0f 0.0fib)
- total: 402 / 2450 kcal, 2048 remaining (0.0c 46.6p 24.0f 0.0fib)
`, "\n")
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
}

func TestExportReplacesExistingSection(t *testing.T) {
	writer, mgr := newWriter(t)
	ctx := context.Background()

	state, err := ledger.NewState().AppendFood("2025-11-02", salmon())
	if err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	state = state.UpsertWeight("2025-11-03", 151.2)
	if _, err := writer.Export(ctx, state, "", ""); err != nil {
		t.Fatalf("Export: %v", err)
	}

	state, err = state.AppendWorkout("2025-11-02", ledger.WorkoutSession{
		ID: "w", DurationMinutes: 30, CaloriesBurned: 191,
		Exercises: []ledger.Exercise{{Name: "Squat", Sets: 3, Reps: 5, LoadLbs: 135, Difficulty: ledger.DifficultyHard}},
	})
	if err != nil {
		t.Fatalf("AppendWorkout: %v", err)
	}
	if _, err := writer.Export(ctx, state, "", ""); err != nil {
		t.Fatalf("Export again: %v", err)
	}

	got, err := os.ReadFile(mgr.JournalPath(ledger.Date("2025-11-02").Time()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := strings.TrimLeft(`
# November 2025

## 2025-11-02
- food: Salmon 200 g, 402 kcal (0.0c 46.6p 24.0f 0.0fib)
- workout: 30 min, 191 kcal burned: Squat 3x5 @ 135 lbs (hard)
- total: 402 / 2641 kcal, 2239 remaining (0.0c 46.6p 24.0f 0.0fib)

## 2025-11-03
- weight: 151.2 lbs
- total: 0 / 2450 kcal, 2450 remaining (0.0c 0.0p 0.0f 0.0fib)
`, "\n")
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
}

func TestExportHonoursRangeAndSplitsMonths(t *testing.T) {
	writer, mgr := newWriter(t)

	state := ledger.NewState().
		UpsertWeight("2025-10-30", 152).
		UpsertWeight("2025-11-01", 151).
		UpsertWeight("2025-11-05", 150)

	months, err := writer.Export(context.Background(), state, "2025-10-30", "2025-11-01")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %+v", months)
	}
	if months[0].Dates[0] != "2025-10-30" || months[1].Dates[0] != "2025-11-01" {
		t.Fatalf("unexpected dates: %+v", months)
	}

	november, err := os.ReadFile(mgr.JournalPath(ledger.Date("2025-11-01").Time()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(november), "2025-11-05") {
		t.Fatalf("export ignored upper bound:\n%s", november)
	}
	if _, err := os.Stat(mgr.JournalPath(ledger.Date("2025-10-30").Time())); err != nil {
		t.Fatalf("october journal missing: %v", err)
	}
}

func TestExportSkipsEmptyDays(t *testing.T) {
	writer, _ := newWriter(t)

	state, err := ledger.NewState().AppendFood("2025-11-02", salmon())
	if err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	state = state.RemoveFood("2025-11-02", "a")

	months, err := writer.Export(context.Background(), state, "", "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(months) != 0 {
		t.Fatalf("expected nothing exported, got %+v", months)
	}
}

func TestExportDropsSectionOfEmptiedDay(t *testing.T) {
	writer, mgr := newWriter(t)
	ctx := context.Background()

	rice := ledger.FoodEntry{ID: "r", Name: "Rice", Quantity: 150, Unit: nutrition.UnitGrams, Macros: nutrition.Macros{Carbs: 42}}
	state, err := ledger.NewState().AppendFood("2025-11-01", rice)
	if err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	if state, err = state.AppendFood("2025-11-02", salmon()); err != nil {
		t.Fatalf("AppendFood: %v", err)
	}
	if _, err := writer.Export(ctx, state, "", ""); err != nil {
		t.Fatalf("Export: %v", err)
	}

	state = state.RemoveFood("2025-11-01", "r")
	months, err := writer.Export(ctx, state, "", "")
	if err != nil {
		t.Fatalf("Export again: %v", err)
	}
	if len(months) != 1 || len(months[0].Removed) != 1 || months[0].Removed[0] != "2025-11-01" {
		t.Fatalf("months = %+v, want 2025-11-01 removed", months)
	}

	got, err := os.ReadFile(mgr.JournalPath(ledger.Date("2025-11-02").Time()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := strings.TrimLeft(`
# November 2025

## 2025-11-02
- food: Salmon 200 g, 402 kcal (0.0c 46.6p 24.0f 0.0fib)
- total: 402 / 2450 kcal, 2048 remaining (0.0c 46.6p 24.0f 0.0fib)
`, "\n")
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}

	state = state.RemoveFood("2025-11-02", "a")
	if _, err := writer.Export(ctx, state, "", ""); err != nil {
		t.Fatalf("Export after last removal: %v", err)
	}
	got, err = os.ReadFile(mgr.JournalPath(ledger.Date("2025-11-02").Time()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "# November 2025\n" {
		t.Fatalf("file contents = %q, want only the month header", got)
	}
}

func TestRemoveSection(t *testing.T) {
	lines := []string{"# November 2025", "", "## 2025-11-01", "- a", "", "## 2025-11-02", "- b"}

	got, ok := removeSection(lines, "2025-11-01")
	if !ok || strings.Join(got, "|") != "# November 2025||## 2025-11-02|- b" {
		t.Fatalf("remove middle = %q %v", got, ok)
	}
	got, ok = removeSection(lines, "2025-11-02")
	if !ok || strings.Join(got, "|") != "# November 2025||## 2025-11-01|- a" {
		t.Fatalf("remove last = %q %v", got, ok)
	}
	if _, ok := removeSection(lines, "2025-11-03"); ok {
		t.Fatalf("removed a section that is not there")
	}
}

func TestParseSectionHeading(t *testing.T) {
	if date, ok := parseSectionHeading("## 2025-11-02"); !ok || date != "2025-11-02" {
		t.Fatalf("parseSectionHeading = %q %v", date, ok)
	}
	for _, line := range []string{"# November 2025", "## notes", "- total"} {
		if _, ok := parseSectionHeading(line); ok {
			t.Fatalf("parseSectionHeading(%q) matched", line)
		}
	}
}
