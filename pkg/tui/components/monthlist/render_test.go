package monthlist

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCustomHeaderRendererOverridesDefault(t *testing.T) {
	anchor := date(2021, time.June, 15)
	m, _ := newSettled(t, options(anchor, anchor, date(2021, time.June, 30)))

	m.SetMonthHeaderRenderer(func(year int, month time.Month) string {
		return fmt.Sprintf("<%d/%d>", month, year)
	})
	if !strings.Contains(m.View(), "<6/2021>") {
		t.Fatalf("expected custom header in view:\n%s", m.View())
	}

	m.SetMonthHeaderRenderer(nil)
	if !strings.Contains(m.View(), "June 2021") {
		t.Fatalf("expected default header restored:\n%s", m.View())
	}
}

func TestCustomDayRendererOverridesDefault(t *testing.T) {
	anchor := date(2021, time.June, 15)
	m, _ := newSettled(t, options(anchor, anchor, date(2021, time.June, 30)))

	m.SetDayRenderer(func(date time.Time) string {
		if date.Day() == 15 {
			return "**"
		}
		return fmt.Sprintf("%2d", date.Day())
	})
	if !strings.Contains(m.View(), "**") {
		t.Fatalf("expected custom day cell in view:\n%s", m.View())
	}
}

func TestWeekdayRowIsLocalized(t *testing.T) {
	anchor := date(2021, time.June, 15)

	en, _ := newSettled(t, options(anchor, anchor, date(2021, time.June, 30)))
	fr := options(anchor, anchor, date(2021, time.June, 30))
	fr.Locale = "fr"
	frm, _ := newSettled(t, fr)

	if en.View() == frm.View() {
		t.Fatal("fr view should differ from en view")
	}
	if len(en.weekdayCells) != 7 || len(frm.weekdayCells) != 7 {
		t.Fatalf("expected 7 weekday cells, got %d and %d",
			len(en.weekdayCells), len(frm.weekdayCells))
	}
	// en weeks start on Sunday, fr weeks on Monday.
	if en.weekdayCells[0] != "Su" {
		t.Fatalf("expected Sunday-first en row, got %v", en.weekdayCells)
	}
	if frm.weekdayCells[0] == "Su" {
		t.Fatalf("expected Monday-first fr row, got %v", frm.weekdayCells)
	}
}

func TestEmptyMonthsRenderNothing(t *testing.T) {
	start := date(2021, time.January, 1)
	m, _ := newSettled(t, options(start, start, date(2021, time.January, 31)))

	if strings.Contains(m.View(), "December") {
		t.Fatalf("out-of-range upward page should not render:\n%s", m.View())
	}
}
