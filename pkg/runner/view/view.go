// Package view runs the scrolling calendar as a full-screen Bubble Tea
// program with a status bar, an optional event log pane and a help
// overlay.
package view

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vertcal/pkg/config"
	"tableflip.dev/vertcal/pkg/tui/components/eventlog"
	"tableflip.dev/vertcal/pkg/tui/components/monthlist"
	"tableflip.dev/vertcal/pkg/tui/components/panel"
	"tableflip.dev/vertcal/pkg/tui/events"
	"tableflip.dev/vertcal/pkg/tui/theme"
)

const logWidth = 44

// View owns the program configuration for the ui command.
type View struct {
	Options config.Options
}

func (v *View) Do() error {
	app, err := newApp(v.Options)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type app struct {
	cal  *monthlist.Model
	log  *eventlog.Model
	help panel.Model

	showLog  bool
	showHelp bool
	status   string

	width  int
	height int

	statusStyle lipgloss.Style
}

func newApp(o config.Options) (*app, error) {
	cal, err := monthlist.New(o)
	if err != nil {
		return nil, err
	}
	help := panel.New(theme.DefaultPanel())
	help.SetContent("vertcal", []string{
		"hjkl / arrows  move the selected day",
		"enter          select the day",
		"pgup / pgdn    scroll by a screen",
		"r              retry a failed direction",
		"e              toggle the event log",
		"?              toggle this help",
		"q              quit",
	})
	return &app{
		cal:         cal,
		log:         eventlog.NewModel(100),
		help:        help,
		status:      "? for help",
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}, nil
}

func (a *app) Init() tea.Cmd {
	return a.cal.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		// Hand the calendar its pane size, not the raw window size.
		_, cmd := a.cal.Update(tea.WindowSizeMsg{Width: a.calWidth(), Height: a.height - 1})
		return a, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "e":
			a.showLog = !a.showLog
			a.layout()
			_, cmd := a.cal.Update(tea.WindowSizeMsg{Width: a.calWidth(), Height: a.height - 1})
			return a, cmd
		case "?":
			a.showHelp = !a.showHelp
			return a, nil
		}
	}

	if a.log.Log(msg) {
		if e, ok := msg.(interface{ Describe() string }); ok {
			a.status = e.Describe()
		}
		if _, ok := msg.(events.PageErrorMsg); ok {
			a.status = "fetch failed, r to retry"
		}
		return a, nil
	}

	_, cmd := a.cal.Update(msg)
	return a, cmd
}

func (a *app) View() string {
	if a.showHelp {
		view, _ := a.help.View()
		return view
	}

	main := a.cal.View()
	if a.showLog {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, a.log.View())
	}
	return main + "\n" + a.statusStyle.Render(a.status)
}

func (a *app) layout() {
	if a.showLog {
		a.log.SetSize(logWidth, a.height-1)
	}
}

func (a *app) calWidth() int {
	if a.showLog {
		return a.width - logWidth
	}
	return a.width
}
