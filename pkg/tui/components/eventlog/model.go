// Package eventlog renders a streaming log of the calendar's emitted
// events, newest first.
package eventlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vertcal/pkg/tui/events"
)

// Level indicates the severity of a logged event.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelError highlights failures.
	LevelError
)

// Entry captures one logged event.
type Entry struct {
	At     time.Time
	Kind   string
	Detail string
	Level  Level
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
}

// DefaultStyles returns the stock event log styling.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Model is the event log pane.
type Model struct {
	viewport viewport.Model
	entries  []Entry

	maxEntries int
	clock      func() time.Time

	width  int
	height int

	styles Styles
}

// NewModel constructs an event log capped at the provided entry count.
func NewModel(maxEntries int) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{
		viewport:   vp,
		maxEntries: maxEntries,
		clock:      time.Now,
		styles:     DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. The log is passive; content changes only
// through Log.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// Log records a calendar event message. Unknown messages are ignored and
// the method reports whether anything was logged.
func (m *Model) Log(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case events.DaySelectedMsg:
		m.append(Entry{Kind: "selected", Detail: msg.Describe()})
	case events.MonthLoadedMsg:
		m.append(Entry{Kind: "loaded", Detail: msg.Describe()})
	case events.PaginationCompletedMsg:
		m.append(Entry{Kind: "completed", Detail: msg.Describe()})
	case events.PageErrorMsg:
		m.append(Entry{Kind: "error", Detail: msg.Describe(), Level: LevelError})
	default:
		return false
	}
	return true
}

// SetSize resizes the pane while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	m.viewport.SetWidth(maxInt(1, width-2))
	m.viewport.SetHeight(maxInt(1, height-3))
	m.refreshContent()
}

// View renders the bordered log.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.styles.Header.Render("Events")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry { return m.entries }

// Clear drops all logged entries.
func (m *Model) Clear() {
	m.entries = nil
	m.refreshContent()
}

// WithClock overrides the timestamp source, for deterministic tests.
func (m *Model) WithClock(clock func() time.Time) {
	m.clock = clock
}

func (m *Model) append(entry Entry) {
	entry.At = m.clock()
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No events yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.At.Format("15:04:05.000"))
	msg := fmt.Sprintf("%s %s", entry.Kind, entry.Detail)
	if entry.Level == LevelError {
		msg = m.styles.Error.Render(msg)
	} else {
		msg = m.styles.Info.Render(msg)
	}
	return fmt.Sprintf("%s %s", ts, msg)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
