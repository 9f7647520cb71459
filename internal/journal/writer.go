// Package journal exports logged days as monthly Markdown files under the
// data directory, one "## YYYY-MM-DD" section per day.
package journal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/faizmokh/makan/internal/files"
	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/summary"
)

// Month reports what an export wrote to one file. Removed lists days whose
// sections were dropped because nothing is logged on them any more.
type Month struct {
	Path    string
	Dates   []ledger.Date
	Removed []ledger.Date
}

// Writer renders day summaries into the monthly journal files.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the file manager that decides where journals live.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Export writes every non-empty day of state between from and to, inclusive.
// Empty bounds are open. A day already in its month file has its section
// replaced, and a day emptied since the last export has its section removed,
// so repeated exports converge on the current state.
func (w *Writer) Export(ctx context.Context, state ledger.State, from, to ledger.Date) ([]Month, error) {
	if w == nil || w.manager == nil {
		return nil, fmt.Errorf("writer not initialized with file manager")
	}

	var (
		months []Month
		byPath = map[string]int{}
	)
	for _, date := range state.Dates() {
		if (from != "" && date < from) || (to != "" && date > to) {
			continue
		}
		path := w.manager.JournalPath(date.Time())
		idx, ok := byPath[path]
		if !ok {
			idx = len(months)
			byPath[path] = idx
			months = append(months, Month{Path: path})
		}
		if state.Day(date).IsEmpty() {
			months[idx].Removed = append(months[idx].Removed, date)
			continue
		}
		months[idx].Dates = append(months[idx].Dates, date)
	}

	written := make([]Month, 0, len(months))
	for _, month := range months {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		month, changed, err := w.writeMonth(state, month)
		if err != nil {
			return nil, err
		}
		if changed {
			written = append(written, month)
		}
	}
	return written, nil
}

// writeMonth applies month to its file. Removed is narrowed to the sections
// that were actually present; a month with nothing to write or remove leaves
// the file untouched and reports false.
func (w *Writer) writeMonth(state ledger.State, month Month) (Month, bool, error) {
	lines, err := readLines(month.Path)
	if err != nil {
		return month, false, err
	}

	var removed []ledger.Date
	for _, date := range month.Removed {
		var ok bool
		if lines, ok = removeSection(lines, date); ok {
			removed = append(removed, date)
		}
	}
	month.Removed = removed
	if len(month.Dates) == 0 && len(month.Removed) == 0 {
		return month, false, nil
	}

	if len(lines) == 0 {
		lines = []string{monthHeader(month.Dates[0].Time())}
	}
	for _, date := range month.Dates {
		lines = replaceSection(lines, date, Section(summary.ForDay(state, date)))
	}

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := files.WriteFileAtomic(month.Path, []byte(content)); err != nil {
		return month, false, fmt.Errorf("write journal %s: %w", month.Path, err)
	}
	return month, true, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal %s: %w", path, err)
	}
	return splitLines(string(data)), nil
}

// replaceSection swaps the lines under date's heading for section, or
// appends section when the heading is absent.
func replaceSection(lines []string, date ledger.Date, section []string) []string {
	start, end := locateSection(lines, date)
	if start < 0 {
		if needsSeparation(lines) {
			lines = append(lines, "")
		}
		return append(lines, section...)
	}

	out := make([]string, 0, len(lines)-(end-start)+len(section))
	out = append(out, lines[:start]...)
	out = append(out, section...)
	if end < len(lines) {
		out = append(out, "")
	}
	return append(out, lines[end:]...)
}

// removeSection drops date's heading and the lines under it, along with the
// blank line that separated it from the previous section.
func removeSection(lines []string, date ledger.Date) ([]string, bool) {
	start, end := locateSection(lines, date)
	if start < 0 {
		return lines, false
	}
	out := make([]string, 0, len(lines)-(end-start))
	out = append(out, lines[:start]...)
	if end == len(lines) {
		for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
			out = out[:len(out)-1]
		}
	}
	return append(out, lines[end:]...), true
}

// locateSection returns the heading line of date and the index of the next
// heading (or len(lines)).
func locateSection(lines []string, date ledger.Date) (int, int) {
	heading := sectionHeading(date)
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, -1
	}

	for i := start + 1; i < len(lines); i++ {
		if _, ok := parseSectionHeading(lines[i]); ok {
			return start, i
		}
	}
	return start, len(lines)
}

func parseSectionHeading(line string) (ledger.Date, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "## ") {
		return "", false
	}
	date, err := ledger.ParseDate(strings.TrimSpace(line[3:]))
	if err != nil {
		return "", false
	}
	return date, true
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func needsSeparation(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	return strings.TrimSpace(lines[len(lines)-1]) != ""
}
