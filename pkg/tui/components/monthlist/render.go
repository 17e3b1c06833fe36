package monthlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vertcal/pkg/locale"
	"tableflip.dev/vertcal/pkg/pager"
	"tableflip.dev/vertcal/pkg/span"
)

const (
	// Seven two-cell columns joined by single spaces.
	gridWidth = 7*2 + 6

	// Lines a month block occupies before its week rows: header and
	// weekday row. Keep in sync with renderMonth.
	blockHeaderLines = 2

	// Scroll stride fallback before the first WindowSizeMsg.
	defaultStride = 8
)

type block struct {
	dir   span.Direction
	month span.Month
	start int
	lines []string
}

type layout struct {
	lines  []string
	anchor int // line index the anchor month starts at
	blocks []block
}

// lineOf returns the content line the day's week row renders on.
func (l layout) lineOf(day time.Time) (int, bool) {
	for _, b := range l.blocks {
		for i, w := range b.month.Weeks {
			if w.Contains(day) {
				return b.start + blockHeaderLines + i, true
			}
		}
	}
	return 0, false
}

// loadedRange returns the first and last loaded day.
func (l layout) loadedRange() (time.Time, time.Time, bool) {
	if len(l.blocks) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first := l.blocks[0].month.FirstDay()
	last := l.blocks[len(l.blocks)-1].month.LastDay()
	return first, last, true
}

// layout renders every loaded month into a single column of lines. Upward
// pages stack in reverse fetch order above the anchor, downward pages
// below; fetch and error indicators sit at the outer edges.
func (m *Model) layout() layout {
	var lay layout

	appendBlock := func(dir span.Direction, mo span.Month) {
		if mo.Empty() {
			return
		}
		lines := m.renderMonth(mo)
		lay.blocks = append(lay.blocks, block{dir: dir, month: mo, start: len(lay.lines), lines: lines})
		lay.lines = append(lay.lines, lines...)
	}

	if line, ok := m.edgeLine(m.up, "earlier"); ok {
		lay.lines = append(lay.lines, line)
	}
	upPages := m.up.Pages()
	for i := len(upPages) - 1; i >= 0; i-- {
		appendBlock(span.TowardStart, upPages[i])
	}

	lay.anchor = len(lay.lines)
	for _, mo := range m.down.Pages() {
		appendBlock(span.TowardEnd, mo)
	}
	if line, ok := m.edgeLine(m.down, "later"); ok {
		lay.lines = append(lay.lines, line)
	}
	return lay
}

// edgeLine renders the fetch spinner or error indicator for one edge.
func (m *Model) edgeLine(p *pager.Pager, what string) (string, bool) {
	switch p.State() {
	case pager.StateFetching:
		return m.spin.View() + m.theme.Spinner.Render(" loading "+what+" months"), true
	case pager.StateError:
		return m.theme.Error.Render(fmt.Sprintf("! %s months: %v (r to retry)", what, p.Err())), true
	}
	return "", false
}

// renderMonth produces the month block: header, weekday row, week rows
// and a trailing separator line.
func (m *Model) renderMonth(mo span.Month) []string {
	lines := make([]string, 0, blockHeaderLines+len(mo.Weeks)+1)
	lines = append(lines, m.renderHeader(mo.Year, mo.Month))
	lines = append(lines, m.theme.WeekdayRow.Render(strings.Join(m.weekdayCells, " ")))
	for _, w := range mo.Weeks {
		lines = append(lines, m.renderWeek(w))
	}
	return append(lines, "")
}

func (m *Model) renderHeader(year int, month time.Month) string {
	if m.headerHook != nil {
		return center(m.headerHook(year, month))
	}
	return m.theme.MonthHeader.Render(center(locale.MonthYear(year, month, m.opts.Locale)))
}

func (m *Model) renderWeek(w span.Week) string {
	cells := make([]string, 7)
	for i := range cells {
		cells[i] = "  "
	}
	for day := w.FirstDay; !day.After(w.LastDay); day = day.AddDate(0, 0, 1) {
		cells[m.src.Column(day)] = m.renderDay(day)
	}
	return strings.Join(cells, " ")
}

func (m *Model) renderDay(day time.Time) string {
	content := fmt.Sprintf("%2d", day.Day())
	if m.dayHook != nil {
		content = fit2(m.dayHook(day))
	}

	style := m.theme.Day
	if sameDay(day, m.opts.Anchor) {
		style = style.Inherit(m.theme.Today)
	}
	if sameDay(day, m.selected) {
		style = style.Inherit(m.theme.Selected)
	}
	return style.Render(content)
}

// View renders the visible slice of the month column.
func (m *Model) View() string {
	lay := m.layout()
	start, end := m.window(lay)
	return strings.Join(lay.lines[start:end], "\n")
}

func weekdayCells(code string, first time.Weekday) []string {
	return locale.WeekdayCells(code, first)
}

func center(s string) string {
	pad := gridWidth - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// fit2 pads or passes through custom day content so the grid keeps its
// two-cell columns for default-width content.
func fit2(s string) string {
	if w := lipgloss.Width(s); w < 2 {
		return strings.Repeat(" ", 2-w) + s
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
