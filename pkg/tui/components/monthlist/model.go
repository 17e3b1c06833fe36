// Package monthlist implements a vertically scrolling, bidirectionally
// paginated month calendar for Bubble Tea.
//
// Two independent pagers anchor at a fixed boundary: months before the
// anchor stack upward, months from the anchor on stack downward, and the
// initial viewport starts at the anchor month. Pages load lazily as the
// view approaches either edge.
package monthlist

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vertcal/pkg/config"
	"tableflip.dev/vertcal/pkg/pager"
	"tableflip.dev/vertcal/pkg/span"
	"tableflip.dev/vertcal/pkg/tui/events"
	"tableflip.dev/vertcal/pkg/tui/theme"
)

// Source supplies month pages and grid geometry. *span.Partitioner is the
// canonical implementation.
type Source interface {
	Page(n int, dir span.Direction) (span.Month, bool, error)
	Bounded(dir span.Direction) bool
	FirstWeekday() time.Weekday
	Clamp(day time.Time) time.Time
	Column(day time.Time) int
}

// MonthHeaderRenderer overrides the month header content.
type MonthHeaderRenderer func(year int, month time.Month) string

// DayRenderer overrides a day cell's content. Returned content should fit
// two terminal cells.
type DayRenderer func(date time.Time) string

type pageLoadedMsg struct {
	dir      span.Direction
	month    span.Month
	terminal bool
}

type pageFailedMsg struct {
	dir span.Direction
	err error
}

// Model is the scrolling month list.
type Model struct {
	src  Source
	opts config.Options

	up   *pager.Pager
	down *pager.Pager

	theme        theme.Theme
	headerHook   MonthHeaderRenderer
	dayHook      DayRenderer
	weekdayCells []string

	spin          spinner.Model
	completedSent map[span.Direction]bool

	selected time.Time
	width    int
	height   int
	yOffset  int // top of viewport, in lines relative to the anchor month
}

// New validates the options and builds the widget. The options' anchor is
// required; the widget never reads the wall clock.
func New(opts config.Options) (*Model, error) {
	src, err := opts.Partitioner()
	if err != nil {
		return nil, err
	}
	return NewWithSource(opts, src), nil
}

// NewWithSource builds the widget around an explicit page source. The
// options must already be valid.
func NewWithSource(opts config.Options, src Source) *Model {
	th := theme.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Spinner

	m := &Model{
		src:  src,
		opts: opts,
		// The anchor month is downward page 1; the upward pager starts one
		// page later so it never duplicates it.
		down:          pager.New(span.TowardEnd, 1+opts.InitialPageOffset),
		up:            pager.New(span.TowardStart, 2+opts.InitialPageOffset),
		theme:         th,
		spin:          sp,
		completedSent: map[span.Direction]bool{},
		selected:      src.Clamp(opts.Anchor),
	}
	m.weekdayCells = weekdayCells(opts.Locale, src.FirstWeekday())
	return m
}

// SetTheme replaces the widget styles.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.spin.Style = th.Spinner
}

// SetMonthHeaderRenderer installs a custom month header renderer. A nil
// renderer restores the localized default.
func (m *Model) SetMonthHeaderRenderer(r MonthHeaderRenderer) { m.headerHook = r }

// SetDayRenderer installs a custom day cell renderer. A nil renderer
// restores the default day-number label.
func (m *Model) SetDayRenderer(r DayRenderer) { m.dayHook = r }

// SetSize updates the viewport dimensions. A zero height renders all
// loaded content.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the currently highlighted day.
func (m *Model) Selected() time.Time { return m.selected }

// Init requests the first page in each direction.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.down), m.fetch(m.up), m.spin.Tick)
}

// Update handles fetch results, navigation keys and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, m.maybeFetch()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case spinner.TickMsg:
		if !m.fetching() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case pageLoadedMsg:
		return m, m.handleLoaded(msg)
	case pageFailedMsg:
		return m, m.handleFailed(msg)
	}
	return m, nil
}

func (m *Model) handleLoaded(msg pageLoadedMsg) tea.Cmd {
	p := m.pagerFor(msg.dir)
	p.Resolve(msg.month, msg.terminal)

	cmds := []tea.Cmd{emit(events.MonthLoadedMsg{
		Year:      msg.month.Year,
		Month:     msg.month.Month,
		Direction: msg.dir,
	})}
	if p.State() == pager.StateCompleted && !m.completedSent[msg.dir] {
		m.completedSent[msg.dir] = true
		cmds = append(cmds, emit(events.PaginationCompletedMsg{Direction: msg.dir}))
	}
	if cmd := m.maybeFetch(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleFailed(msg pageFailedMsg) tea.Cmd {
	m.pagerFor(msg.dir).Fail(msg.err)
	return emit(events.PageErrorMsg{Direction: msg.dir, Err: msg.err})
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "left", "h":
		return m.moveSelection(-1)
	case "right", "l":
		return m.moveSelection(1)
	case "up", "k":
		return m.moveSelection(-7)
	case "down", "j":
		return m.moveSelection(7)
	case "enter", " ":
		return emit(events.DaySelectedMsg{Date: m.selected})
	case "pgup", "b":
		return m.scrollBy(-m.pageStride())
	case "pgdown", "f":
		return m.scrollBy(m.pageStride())
	case "r":
		return m.retry()
	}
	return nil
}

// UpState reports the upward pager's state, for host status lines.
func (m *Model) UpState() pager.State { return m.up.State() }

// DownState reports the downward pager's state.
func (m *Model) DownState() pager.State { return m.down.State() }

func (m *Model) pagerFor(dir span.Direction) *pager.Pager {
	if dir == span.TowardStart {
		return m.up
	}
	return m.down
}

func (m *Model) fetching() bool {
	return m.up.State() == pager.StateFetching || m.down.State() == pager.StateFetching
}

// fetch claims the pager's next page and returns the command that loads
// it. At most one fetch per direction is ever in flight; a fetch still
// outstanding when the program shuts down is simply abandoned.
func (m *Model) fetch(p *pager.Pager) tea.Cmd {
	page, ok := p.Begin()
	if !ok {
		return nil
	}
	dir := p.Direction()
	src := m.src
	return func() tea.Msg {
		month, terminal, err := src.Page(page, dir)
		if err != nil {
			return pageFailedMsg{dir: dir, err: err}
		}
		return pageLoadedMsg{dir: dir, month: month, terminal: terminal}
	}
}

// maybeFetch starts a fetch for any direction whose supply of loaded,
// not-yet-visible months fell below the prefetch threshold.
func (m *Model) maybeFetch() tea.Cmd {
	lay := m.layout()
	m.clampOffset(lay)
	start, end := m.window(lay)

	unseenUp, unseenDown := 0, 0
	if m.height <= 0 {
		// No viewport yet: treat every loaded page as unseen so each
		// direction stocks up to the threshold and no further.
		unseenUp, unseenDown = m.up.Len(), m.down.Len()
	} else {
		for _, b := range lay.blocks {
			switch {
			case b.dir == span.TowardStart && b.start+len(b.lines) <= start:
				unseenUp++
			case b.dir == span.TowardEnd && b.start >= end:
				unseenDown++
			}
		}
	}

	var cmds []tea.Cmd
	if m.up.NeedsFetch(unseenUp, m.opts.PrefetchThreshold) {
		cmds = append(cmds, m.fetch(m.up))
	}
	if m.down.NeedsFetch(unseenDown, m.opts.PrefetchThreshold) {
		cmds = append(cmds, m.fetch(m.down))
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, m.spin.Tick)
	return tea.Batch(cmds...)
}

func (m *Model) moveSelection(days int) tea.Cmd {
	next := m.src.Clamp(m.selected.AddDate(0, 0, days))
	lay := m.layout()
	if first, last, ok := lay.loadedRange(); ok {
		if next.Before(first) {
			next = first
		}
		if next.After(last) {
			next = last
		}
	}
	m.selected = next
	m.ensureVisible(lay, next)
	return m.maybeFetch()
}

func (m *Model) scrollBy(lines int) tea.Cmd {
	m.yOffset += lines
	return m.maybeFetch()
}

func (m *Model) pageStride() int {
	if m.height > 1 {
		return m.height - 1
	}
	return defaultStride
}

func (m *Model) retry() tea.Cmd {
	var cmds []tea.Cmd
	if m.up.Retry() {
		cmds = append(cmds, m.fetch(m.up))
	}
	if m.down.Retry() {
		cmds = append(cmds, m.fetch(m.down))
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, m.spin.Tick)
	return tea.Batch(cmds...)
}

// ensureVisible scrolls just far enough to bring day into the viewport.
func (m *Model) ensureVisible(lay layout, day time.Time) {
	line, ok := lay.lineOf(day)
	if !ok || m.height <= 0 {
		return
	}
	start, end := m.window(lay)
	switch {
	case line < start:
		m.yOffset = line - lay.anchor
	case line >= end:
		m.yOffset = line - lay.anchor - m.height + 1
	}
}

// window returns the visible half-open line range [start, end).
func (m *Model) window(lay layout) (int, int) {
	total := len(lay.lines)
	if m.height <= 0 || total <= m.height {
		return 0, total
	}
	start := lay.anchor + m.yOffset
	if start > total-m.height {
		start = total - m.height
	}
	if start < 0 {
		start = 0
	}
	return start, start + m.height
}

// clampOffset keeps the viewport inside the rendered content without
// disturbing the anchor-relative offset when upward pages prepend.
func (m *Model) clampOffset(lay layout) {
	total := len(lay.lines)
	if m.height <= 0 || total <= m.height {
		return
	}
	if lay.anchor+m.yOffset > total-m.height {
		m.yOffset = total - m.height - lay.anchor
	}
	if lay.anchor+m.yOffset < 0 {
		m.yOffset = -lay.anchor
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
