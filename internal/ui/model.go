package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/summary"
	"github.com/faizmokh/makan/internal/tracker"
	"github.com/faizmokh/makan/internal/workout"
)

// Model owns Bubble Tea state for the daily tracker view.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker

	currentDate ledger.Date
	summary     summary.Summary
	selected    int

	mode       mode
	input      textinput.Model
	inputLabel string
	draft      *workout.Draft
	deleting   row

	loading    bool
	statusLine string
	errorLine  string
	quote      string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAddFood
	modeWeight
	modeWorkout
	modeWorkoutDuration
	modeConfirmDelete
)

// row is a selectable line: food entries first, then workouts.
type row struct {
	workout bool
	id      string
	label   string
}

type dayLoadedMsg struct {
	date    ledger.Date
	summary summary.Summary
}

type foodLoggedMsg struct {
	entry ledger.FoodEntry
	err   error
}

type removedMsg struct {
	label string
	found bool
	err   error
}

type weightLoggedMsg struct {
	sample  ledger.WeightSample
	cleared bool
	err     error
}

type workoutFinishedMsg struct {
	draft   *workout.Draft
	session ledger.WorkoutSession
	err     error
}

// NewModel seeds a Bubble Tea model backed by tr.
func NewModel(ctx context.Context, tr *tracker.Tracker) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200

	date := tr.Today()
	return Model{
		ctx:         ctx,
		tracker:     tr,
		currentDate: date,
		summary:     summary.Summary{Date: date},
		mode:        modeNormal,
		input:       input,
		loading:     true,
		statusLine:  "Loading today...",
	}
}

// Init loads the current day.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	case foodLoggedMsg:
		return m.handleFoodLogged(msg)
	case removedMsg:
		return m.handleRemoved(msg)
	case weightLoggedMsg:
		return m.handleWeightLogged(msg)
	case workoutFinishedMsg:
		return m.handleWorkoutFinished(msg)
	default:
		if m.mode == modeNormal || m.mode == modeConfirmDelete {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		return m.handleConfirmKey(msg)
	}
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.rows())-1 {
			m.selected++
		}
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "left", "h":
		return m.gotoDate(m.currentDate.AddDays(-1))
	case "right", "l":
		return m.gotoDate(m.currentDate.AddDays(1))
	case "t":
		return m.gotoDate(m.tracker.Today())
	case "r":
		return m.reload()
	case "a":
		return m.beginInput(modeAddFood, "Add food: @ref [qty] or name [qty[g|u]] carbs/protein/fat[/fiber]", "")
	case "w":
		value := ""
		if m.summary.Weight != nil {
			value = strconv.FormatFloat(m.summary.Weight.Lbs, 'f', -1, 64)
		}
		return m.beginInput(modeWeight, "Weight in lbs (empty to clear)", value)
	case "x":
		m.draft = workout.NewDraft()
		return m.beginInput(modeWorkout, workoutLabel(m.draft), "")
	case "d":
		return m.beginDelete()
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDelete()
	case "n", "N", "esc":
		return m.cancelInput("Delete cancelled.")
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginInput(next mode, label, value string) (tea.Model, tea.Cmd) {
	m.mode = next
	m.inputLabel = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.errorLine = ""
	m.statusLine = ""
	return m, m.input.Focus()
}

func (m Model) beginDelete() (tea.Model, tea.Cmd) {
	rows := m.rows()
	if len(rows) == 0 {
		m.statusLine = "Nothing to delete."
		return m, nil
	}
	m.deleting = rows[m.selected]
	m.mode = modeConfirmDelete
	m.errorLine = ""
	m.statusLine = ""
	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddFood:
		parsed, err := parseFoodLine(value)
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		var cmd tea.Cmd
		if parsed.fromLibrary {
			cmd = m.logFromLibraryCmd(m.currentDate, parsed.ref, parsed.quantity)
		} else {
			portion := parsed.portion()
			if err := portion.Validate(); err != nil {
				m.errorLine = err.Error()
				return m, nil
			}
			cmd = m.logFoodCmd(m.currentDate, parsed)
		}
		m = m.closeInput()
		m.statusLine = "Saving entry..."
		return m, cmd
	case modeWeight:
		if value == "" {
			cmd := m.clearWeightCmd(m.currentDate)
			m = m.closeInput()
			m.statusLine = "Clearing weight..."
			return m, cmd
		}
		lbs, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.errorLine = fmt.Sprintf("Invalid weight %q", value)
			return m, nil
		}
		if err := ledger.ValidateWeight(lbs); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		cmd := m.logWeightCmd(m.currentDate, lbs)
		m = m.closeInput()
		m.statusLine = "Saving weight..."
		return m, cmd
	case modeWorkout:
		if value == "" {
			if m.draft.Len() == 0 {
				m.errorLine = "Add at least one exercise."
				return m, nil
			}
			return m.beginInput(modeWorkoutDuration, "Duration in minutes", strconv.Itoa(workout.DefaultDurationMinutes))
		}
		ex, err := workout.ParseSpec(value)
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		if _, err := m.draft.Add(ex); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		m.input.SetValue("")
		m.inputLabel = workoutLabel(m.draft)
		m.errorLine = ""
		return m, nil
	case modeWorkoutDuration:
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			m.errorLine = fmt.Sprintf("Invalid duration %q", value)
			return m, nil
		}
		cmd := m.finishWorkoutCmd(m.currentDate, m.draft, minutes)
		m.draft = nil
		m = m.closeInput()
		m.statusLine = "Saving workout..."
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) closeInput() Model {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
	m.inputLabel = ""
	m.errorLine = ""
	return m
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	if m.draft != nil {
		_ = m.draft.Discard()
		m.draft = nil
	}
	m = m.closeInput()
	m.deleting = row{}
	if message != "" {
		m.statusLine = message
	}
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	target := m.deleting
	cmd := m.removeCmd(m.currentDate, target)
	m.mode = modeNormal
	m.deleting = row{}
	m.statusLine = "Deleting..."
	m.errorLine = ""
	return m, cmd
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if msg.date != m.currentDate {
		return m, nil
	}
	m.loading = false
	m.summary = msg.summary
	if rows := len(m.rows()); m.selected >= rows {
		m.selected = max(rows-1, 0)
	}
	if m.statusLine == "Loading today..." || m.statusLine == "Loading..." {
		m.statusLine = ""
	}
	return m, nil
}

func (m Model) handleFoodLogged(msg foodLoggedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to log food: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.selected = 0
	m.statusLine = fmt.Sprintf("Logged %s (%d kcal).", msg.entry.Name, msg.entry.Calories())
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) handleRemoved(msg removedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to delete: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	if !msg.found {
		m.statusLine = "Already gone."
	} else {
		m.statusLine = fmt.Sprintf("Deleted %s.", msg.label)
	}
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) handleWeightLogged(msg weightLoggedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to save weight: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	if msg.cleared {
		m.statusLine = "Weight cleared."
	} else {
		m.statusLine = fmt.Sprintf("Weight %.1f lbs saved.", msg.sample.Lbs)
	}
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) handleWorkoutFinished(msg workoutFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The draft stays open; let the user retry the duration or Esc out.
		m.draft = msg.draft
		m.errorLine = fmt.Sprintf("Failed to save workout: %v", msg.err)
		m.statusLine = ""
		return m.beginInputKeepError(modeWorkoutDuration, "Duration in minutes", strconv.Itoa(msg.session.DurationMinutes))
	}
	m.draft = nil
	m.quote = msg.session.Motivation
	m.statusLine = fmt.Sprintf("Workout saved: %d min, %d kcal burned.", msg.session.DurationMinutes, msg.session.CaloriesBurned)
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) beginInputKeepError(next mode, label, value string) (tea.Model, tea.Cmd) {
	errorLine := m.errorLine
	model, cmd := m.beginInput(next, label, value)
	updated := model.(Model)
	updated.errorLine = errorLine
	return updated, cmd
}

func (m Model) gotoDate(date ledger.Date) (tea.Model, tea.Cmd) {
	if date == m.currentDate {
		return m, nil
	}
	m.currentDate = date
	m.summary = summary.Summary{Date: date}
	m.selected = 0
	m.loading = true
	m.quote = ""
	m.statusLine = "Loading..."
	m.errorLine = ""
	return m, m.loadDayCmd(date)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = "Loading..."
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) rows() []row {
	rows := make([]row, 0, len(m.summary.Food)+len(m.summary.Workouts))
	for _, entry := range m.summary.Food {
		rows = append(rows, row{id: entry.ID, label: entry.Name})
	}
	for _, session := range m.summary.Workouts {
		rows = append(rows, row{workout: true, id: session.ID, label: fmt.Sprintf("workout (%d min)", session.DurationMinutes)})
	}
	return rows
}

func (m Model) loadDayCmd(date ledger.Date) tea.Cmd {
	tr := m.tracker
	return func() tea.Msg {
		return dayLoadedMsg{date: date, summary: tr.Summary(date)}
	}
}

func (m Model) logFoodCmd(date ledger.Date, parsed foodInput) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		entry, err := tr.LogFood(ctx, date, parsed.portion())
		return foodLoggedMsg{entry: entry, err: err}
	}
}

func (m Model) logFromLibraryCmd(date ledger.Date, ref string, qty *float64) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		entry, err := tr.LogFromLibrary(ctx, date, ref, qty)
		return foodLoggedMsg{entry: entry, err: err}
	}
}

func (m Model) removeCmd(date ledger.Date, target row) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		var (
			found bool
			err   error
		)
		if target.workout {
			found, err = tr.RemoveWorkout(ctx, date, target.id)
		} else {
			found, err = tr.RemoveFood(ctx, date, target.id)
		}
		return removedMsg{label: target.label, found: found, err: err}
	}
}

func (m Model) logWeightCmd(date ledger.Date, lbs float64) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		sample, err := tr.LogWeight(ctx, date, lbs)
		return weightLoggedMsg{sample: sample, err: err}
	}
}

func (m Model) clearWeightCmd(date ledger.Date) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		return weightLoggedMsg{cleared: true, err: tr.ClearWeight(ctx, date)}
	}
}

func (m Model) finishWorkoutCmd(date ledger.Date, draft *workout.Draft, minutes int) tea.Cmd {
	tr := m.tracker
	ctx := m.ctx
	return func() tea.Msg {
		session, err := tr.FinishWorkout(ctx, date, draft, minutes)
		if err != nil {
			session.DurationMinutes = minutes
		}
		return workoutFinishedMsg{draft: draft, session: session, err: err}
	}
}

func workoutLabel(draft *workout.Draft) string {
	n := draft.Len()
	return fmt.Sprintf("Exercise name[:SETSxREPS[@LBS]][:e|m|h|f] (%d added, empty Enter to finish)", n)
}
