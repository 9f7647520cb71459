package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/summary"
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Time().Format("Monday, 02 January 2006")
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		m.writeBudget(&b)
		m.writeFood(&b)
		m.writeWorkouts(&b)
		writeWeight(&b, m.summary.Weight)
	}

	if m.quote != "" {
		b.WriteString("\n")
		b.WriteString(quoteStyle.Render(m.quote))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAddFood, modeWeight, modeWorkout, modeWorkoutDuration:
		b.WriteString("\n")
		b.WriteString(m.inputLabel)
		b.WriteByte('\n')
		if m.mode == modeWorkout && m.draft != nil {
			for _, ex := range m.draft.Exercises() {
				b.WriteString("  + ")
				b.WriteString(formatExercise(ex))
				b.WriteByte('\n')
			}
		}
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Delete %s? (y/n, Esc to cancel)", m.deleting.label))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Navigation: <-/h prev  ->/l next  j/k select  t today  r reload"))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("Actions: a add food  x workout  w weight  d delete  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) writeBudget(b *strings.Builder) {
	s := m.summary
	if s.OverBudget {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("%d kcal over budget", -s.Remaining)))
	} else {
		b.WriteString(goodStyle.Render(fmt.Sprintf("%d kcal remaining", s.Remaining)))
	}
	fmt.Fprintf(b, "  (budget %d = goal %d + burned %d)\n", s.Budget, s.Goals.Calories, s.Burned)

	writeProgress(b, s.Calories, "kcal")
	for _, p := range s.Macros {
		writeProgress(b, p, "g")
	}
}

func writeProgress(b *strings.Builder, p summary.Progress, unit string) {
	fmt.Fprintf(b, "%-8s %s %6.1f / %.0f %s\n", p.Label, progressBar(p.Fraction, p.Over), p.Consumed, p.Goal, unit)
}

func (m Model) writeFood(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Food"))
	b.WriteByte('\n')
	if len(m.summary.Food) == 0 {
		b.WriteString("(nothing logged)\n")
		return
	}
	for i, entry := range m.summary.Food {
		m.writeRow(b, i, formatEntry(entry))
	}
}

func (m Model) writeWorkouts(b *strings.Builder) {
	if len(m.summary.Workouts) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Workouts"))
	b.WriteByte('\n')
	offset := len(m.summary.Food)
	for i, session := range m.summary.Workouts {
		m.writeRow(b, offset+i, fmt.Sprintf("%d min, %d kcal burned (%d exercise%s)",
			session.DurationMinutes, session.CaloriesBurned, len(session.Exercises), plural(len(session.Exercises))))
	}
}

func (m Model) writeRow(b *strings.Builder, index int, line string) {
	if index == m.selected {
		b.WriteString(selectedStyle.Render("> " + line))
	} else {
		b.WriteString(textStyle.Render("  " + line))
	}
	b.WriteByte('\n')
}

func writeWeight(b *strings.Builder, weight *ledger.WeightSample) {
	if weight == nil {
		return
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "%s %.1f lbs\n", sectionStyle.Render("Weight"), weight.Lbs)
}

func formatEntry(entry ledger.FoodEntry) string {
	qty := strconv.FormatFloat(entry.Quantity, 'f', -1, 64)
	unit := "g"
	if entry.Unit == nutrition.UnitCount {
		unit = " u"
	}
	return fmt.Sprintf("%s %s%s  %d kcal  %s", entry.Name, qty, unit, entry.Calories(), entry.Macros)
}

func formatExercise(ex ledger.Exercise) string {
	line := fmt.Sprintf("%s %dx%d", ex.Name, ex.Sets, ex.Reps)
	if ex.LoadLbs > 0 {
		line += fmt.Sprintf(" @ %s lbs", strconv.FormatFloat(ex.LoadLbs, 'f', -1, 64))
	}
	return line + " (" + string(ex.Difficulty) + ")"
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
