// Package span partitions a date range into calendar months and weeks.
//
// A Partitioner is anchored at a reference date and hands out month pages
// in either direction: toward the configured end date or toward the
// configured start date. Weeks inside a page align to a 7-day grid that
// begins on a configurable weekday, and boundary weeks are clipped so no
// page ever covers a day outside the configured bounds.
package span

import (
	"errors"
	"fmt"
	"time"
)

// Direction selects which way pagination walks from the anchor month.
type Direction int

const (
	// TowardEnd pages forward in time. Page 1 is the anchor's own month.
	TowardEnd Direction = iota
	// TowardStart pages backward in time. Page 1 is the anchor's own month.
	TowardStart
)

func (d Direction) String() string {
	if d == TowardStart {
		return "up"
	}
	return "down"
}

// Week is one row of up to seven day cells. FirstDay and LastDay fall
// mid-week when the row is clipped by a month edge or a configured bound.
type Week struct {
	FirstDay time.Time
	LastDay  time.Time
}

// Days reports how many day cells the week covers. Rounding absorbs the
// off-by-an-hour days that DST transitions introduce.
func (w Week) Days() int {
	return int(w.LastDay.Sub(w.FirstDay).Hours()/24+0.5) + 1
}

// Contains reports whether day falls inside the week.
func (w Week) Contains(day time.Time) bool {
	return !day.Before(w.FirstDay) && !day.After(w.LastDay)
}

// Month is a single calendar month clipped to the configured bounds. A
// month that lies entirely outside the bounds carries no weeks.
type Month struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Empty reports whether the month carries no visible days.
func (m Month) Empty() bool { return len(m.Weeks) == 0 }

// FirstDay returns the first visible day, or the zero time for an empty month.
func (m Month) FirstDay() time.Time {
	if m.Empty() {
		return time.Time{}
	}
	return m.Weeks[0].FirstDay
}

// LastDay returns the last visible day, or the zero time for an empty month.
func (m Month) LastDay() time.Time {
	if m.Empty() {
		return time.Time{}
	}
	return m.Weeks[len(m.Weeks)-1].LastDay
}

// ErrInvalidPage is returned for page indexes below 1.
var ErrInvalidPage = errors.New("page index must be at least 1")

// Partitioner computes month pages relative to an anchor date. It is pure
// and safe for reuse: the same page index always yields the same month.
type Partitioner struct {
	anchor       time.Time
	start        time.Time // zero when unbounded
	end          time.Time // zero when unbounded
	firstWeekday time.Weekday
}

// New validates the bounds and returns a partitioner. The anchor is
// required; start and end may be zero for unbounded pagination in that
// direction. Inverted bounds and an anchor outside the bounds are
// configuration errors.
func New(anchor, start, end time.Time, firstWeekday time.Weekday) (*Partitioner, error) {
	if anchor.IsZero() {
		return nil, errors.New("anchor date is required")
	}
	anchor = midnight(anchor)
	if !start.IsZero() {
		start = midnight(start)
	}
	if !end.IsZero() {
		end = midnight(end)
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return nil, fmt.Errorf("start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if !start.IsZero() && anchor.Before(start) {
		return nil, fmt.Errorf("anchor date %s is before start date %s",
			anchor.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if !end.IsZero() && anchor.After(end) {
		return nil, fmt.Errorf("anchor date %s is after end date %s",
			anchor.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if firstWeekday < time.Sunday || firstWeekday > time.Saturday {
		return nil, fmt.Errorf("invalid first weekday %d", firstWeekday)
	}
	return &Partitioner{
		anchor:       anchor,
		start:        start,
		end:          end,
		firstWeekday: firstWeekday,
	}, nil
}

// FirstWeekday returns the weekday the grid starts on.
func (p *Partitioner) FirstWeekday() time.Weekday { return p.firstWeekday }

// Bounded reports whether the given direction has a configured bound.
func (p *Partitioner) Bounded(dir Direction) bool {
	if dir == TowardStart {
		return !p.start.IsZero()
	}
	return !p.end.IsZero()
}

// Page returns the nth month page in the given direction, 1-based. The
// second result reports whether the page is terminal: its boundary week
// touches the configured bound, so no further pages exist past it. Pages
// that lie entirely beyond a bound come back empty and terminal.
func (p *Partitioner) Page(n int, dir Direction) (Month, bool, error) {
	if n < 1 {
		return Month{}, false, fmt.Errorf("%w: got %d", ErrInvalidPage, n)
	}

	step := n - 1
	if dir == TowardStart {
		step = -step
	}
	first := firstOfMonth(p.anchor).AddDate(0, step, 0)
	last := first.AddDate(0, 1, -1)

	m := Month{Year: first.Year(), Month: first.Month()}

	lower, upper := first, last
	if !p.start.IsZero() && p.start.After(lower) {
		lower = p.start
	}
	if !p.end.IsZero() && p.end.Before(upper) {
		upper = p.end
	}
	if lower.After(upper) {
		// The whole month is past a bound.
		return m, true, nil
	}

	for day := lower; !day.After(upper); {
		weekEnd := p.endOfWeek(day)
		if weekEnd.After(upper) {
			weekEnd = upper
		}
		m.Weeks = append(m.Weeks, Week{FirstDay: day, LastDay: weekEnd})
		day = weekEnd.AddDate(0, 0, 1)
	}

	terminal := false
	switch dir {
	case TowardStart:
		terminal = !p.start.IsZero() && lower.Equal(p.start)
	case TowardEnd:
		terminal = !p.end.IsZero() && upper.Equal(p.end)
	}
	return m, terminal, nil
}

// Clamp restricts day to the configured bounds.
func (p *Partitioner) Clamp(day time.Time) time.Time {
	day = midnight(day)
	if !p.start.IsZero() && day.Before(p.start) {
		return p.start
	}
	if !p.end.IsZero() && day.After(p.end) {
		return p.end
	}
	return day
}

// Column returns the grid column (0-6) a day renders in.
func (p *Partitioner) Column(day time.Time) int {
	return int(day.Weekday()-p.firstWeekday+7) % 7
}

// endOfWeek returns the last day of the grid week containing day,
// ignoring month and range bounds.
func (p *Partitioner) endOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, 6-p.Column(day))
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
