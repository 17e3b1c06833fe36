package eventlog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/vertcal/pkg/span"
	"tableflip.dev/vertcal/pkg/tui/events"
)

func TestLogRecordsCalendarEventsNewestFirst(t *testing.T) {
	m := NewModel(10)
	m.WithClock(func() time.Time {
		return time.Date(2021, time.June, 15, 12, 0, 0, 0, time.UTC)
	})

	if m.Log(struct{}{}) {
		t.Fatal("unknown messages should not be logged")
	}
	if !m.Log(events.MonthLoadedMsg{Year: 2021, Month: time.June, Direction: span.TowardEnd}) {
		t.Fatal("month loaded event should be logged")
	}
	if !m.Log(events.PageErrorMsg{Direction: span.TowardStart, Err: errors.New("boom")}) {
		t.Fatal("page error event should be logged")
	}

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != "error" || entries[0].Level != LevelError {
		t.Fatalf("newest entry should be the error, got %+v", entries[0])
	}
	if entries[1].Kind != "loaded" {
		t.Fatalf("oldest entry should be the load, got %+v", entries[1])
	}
}

func TestLogCapsEntries(t *testing.T) {
	m := NewModel(3)
	for i := 0; i < 5; i++ {
		m.Log(events.PaginationCompletedMsg{Direction: span.TowardEnd})
	}
	if got := len(m.Entries()); got != 3 {
		t.Fatalf("expected 3 capped entries, got %d", got)
	}
}

func TestViewShowsHeaderAndEntries(t *testing.T) {
	m := NewModel(10)
	m.SetSize(40, 8)
	m.Log(events.DaySelectedMsg{Date: time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)})

	view := m.View()
	if !strings.Contains(view, "Events") {
		t.Fatalf("view should carry the header:\n%s", view)
	}
	if !strings.Contains(view, "selected") {
		t.Fatalf("view should carry the entry:\n%s", view)
	}
}
