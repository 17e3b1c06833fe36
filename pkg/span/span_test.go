package span

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustNew(t *testing.T, anchor, start, end time.Time, first time.Weekday) *Partitioner {
	t.Helper()
	p, err := New(anchor, start, end, first)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return p
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(date(2021, time.March, 1), date(2021, time.June, 1), date(2021, time.January, 1), time.Monday)
	if err == nil {
		t.Fatal("expected error for start after end")
	}
}

func TestNewRejectsZeroAnchor(t *testing.T) {
	_, err := New(time.Time{}, date(2021, time.January, 1), date(2021, time.June, 1), time.Monday)
	if err == nil {
		t.Fatal("expected error for zero anchor")
	}
}

func TestNewRejectsAnchorOutsideBounds(t *testing.T) {
	_, err := New(date(2020, time.December, 25), date(2021, time.January, 1), date(2021, time.June, 1), time.Monday)
	if err == nil {
		t.Fatal("expected error for anchor before start")
	}
	_, err = New(date(2021, time.July, 2), date(2021, time.January, 1), date(2021, time.June, 1), time.Monday)
	if err == nil {
		t.Fatal("expected error for anchor after end")
	}
}

func TestPageRejectsIndexBelowOne(t *testing.T) {
	p := mustNew(t, date(2021, time.March, 1), time.Time{}, time.Time{}, time.Monday)
	if _, _, err := p.Page(0, TowardEnd); err == nil {
		t.Fatal("expected error for page 0")
	}
}

func TestFirstPageClipsToStartDate(t *testing.T) {
	start := date(2021, time.June, 15)
	p := mustNew(t, start, start, time.Time{}, time.Monday)

	m, terminal, err := p.Page(1, TowardEnd)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if terminal {
		t.Fatal("unbounded downward page should not be terminal")
	}
	if got := m.FirstDay(); !got.Equal(start) {
		t.Fatalf("first week should start on the 15th, got %s", got.Format("2006-01-02"))
	}
	if got := m.LastDay(); !got.Equal(date(2021, time.June, 30)) {
		t.Fatalf("last week should end on June 30, got %s", got.Format("2006-01-02"))
	}
}

func TestSingleMonthBothDirectionsTerminal(t *testing.T) {
	start := date(2021, time.January, 1)
	end := date(2021, time.January, 31)
	p := mustNew(t, start, start, end, time.Monday)

	down, terminal, err := p.Page(1, TowardEnd)
	if err != nil {
		t.Fatalf("Page down returned error: %v", err)
	}
	if !terminal {
		t.Fatal("January page should be terminal downward")
	}
	if !down.FirstDay().Equal(start) || !down.LastDay().Equal(end) {
		t.Fatalf("January should be clipped to 1-31, got %s..%s",
			down.FirstDay().Format("2006-01-02"), down.LastDay().Format("2006-01-02"))
	}

	// The page past the start bound is empty and terminal.
	up, terminal, err := p.Page(2, TowardStart)
	if err != nil {
		t.Fatalf("Page up returned error: %v", err)
	}
	if !terminal {
		t.Fatal("December 2020 page should be terminal upward")
	}
	if !up.Empty() {
		t.Fatalf("December 2020 should carry no weeks, got %d", len(up.Weeks))
	}
}

func TestUnboundedDirectionNeverTerminal(t *testing.T) {
	p := mustNew(t, date(2021, time.January, 1), date(2021, time.January, 1), time.Time{}, time.Monday)
	for n := 1; n <= 48; n++ {
		_, terminal, err := p.Page(n, TowardEnd)
		if err != nil {
			t.Fatalf("Page %d returned error: %v", n, err)
		}
		if terminal {
			t.Fatalf("page %d reported terminal with no end bound", n)
		}
	}
}

func TestPageIsIdempotent(t *testing.T) {
	p := mustNew(t, date(2021, time.March, 10), date(2021, time.January, 5), date(2021, time.August, 20), time.Monday)
	a, ta, err := p.Page(3, TowardEnd)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	b, tb, err := p.Page(3, TowardEnd)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if ta != tb || a.Year != b.Year || a.Month != b.Month || len(a.Weeks) != len(b.Weeks) {
		t.Fatalf("repeated page differs: %+v vs %+v", a, b)
	}
	for i := range a.Weeks {
		if !a.Weeks[i].FirstDay.Equal(b.Weeks[i].FirstDay) || !a.Weeks[i].LastDay.Equal(b.Weeks[i].LastDay) {
			t.Fatalf("week %d differs: %+v vs %+v", i, a.Weeks[i], b.Weeks[i])
		}
	}
}

func TestWeeksAlignToGrid(t *testing.T) {
	cases := []struct {
		name  string
		first time.Weekday
	}{
		{"monday", time.Monday},
		{"sunday", time.Sunday},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustNew(t, date(2021, time.June, 1), time.Time{}, time.Time{}, tc.first)
			m, _, err := p.Page(1, TowardEnd)
			if err != nil {
				t.Fatalf("Page returned error: %v", err)
			}
			for i, w := range m.Weeks {
				if i > 0 && w.FirstDay.Weekday() != tc.first {
					t.Fatalf("week %d starts on %v, want %v", i, w.FirstDay.Weekday(), tc.first)
				}
				if i < len(m.Weeks)-1 {
					wantEnd := (tc.first + 6) % 7
					if w.LastDay.Weekday() != wantEnd {
						t.Fatalf("week %d ends on %v, want %v", i, w.LastDay.Weekday(), wantEnd)
					}
				}
				if i > 0 {
					prev := m.Weeks[i-1].LastDay
					if !w.FirstDay.Equal(prev.AddDate(0, 0, 1)) {
						t.Fatalf("week %d is not contiguous with week %d", i, i-1)
					}
				}
			}
		})
	}
}

// Walking toward the end from the start date and toward the start from the
// end date must each cover every day of the range exactly once.
func TestWalksCoverRangeExactlyOnce(t *testing.T) {
	start := date(2021, time.January, 14)
	end := date(2021, time.May, 3)

	walk := func(t *testing.T, anchor time.Time, dir Direction) map[string]int {
		t.Helper()
		p := mustNew(t, anchor, start, end, time.Monday)
		seen := map[string]int{}
		for n := 1; n <= 100; n++ {
			m, terminal, err := p.Page(n, dir)
			if err != nil {
				t.Fatalf("Page %d returned error: %v", n, err)
			}
			for _, w := range m.Weeks {
				for d := w.FirstDay; !d.After(w.LastDay); d = d.AddDate(0, 0, 1) {
					seen[d.Format("2006-01-02")]++
				}
			}
			if terminal {
				return seen
			}
		}
		t.Fatal("walk never reached a terminal page")
		return nil
	}

	for _, tc := range []struct {
		name   string
		anchor time.Time
		dir    Direction
	}{
		{"toward end from start", start, TowardEnd},
		{"toward start from end", end, TowardStart},
	} {
		t.Run(tc.name, func(t *testing.T) {
			seen := walk(t, tc.anchor, tc.dir)
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				key := d.Format("2006-01-02")
				if seen[key] != 1 {
					t.Fatalf("day %s covered %d times", key, seen[key])
				}
				delete(seen, key)
			}
			for key := range seen {
				t.Fatalf("day %s is outside the configured range", key)
			}
		})
	}
}

func TestColumnFollowsFirstWeekday(t *testing.T) {
	p := mustNew(t, date(2021, time.June, 1), time.Time{}, time.Time{}, time.Monday)
	// 2021-06-01 was a Tuesday.
	if got := p.Column(date(2021, time.June, 1)); got != 1 {
		t.Fatalf("expected column 1 for Tuesday with Monday start, got %d", got)
	}
	sun := mustNew(t, date(2021, time.June, 1), time.Time{}, time.Time{}, time.Sunday)
	if got := sun.Column(date(2021, time.June, 1)); got != 2 {
		t.Fatalf("expected column 2 for Tuesday with Sunday start, got %d", got)
	}
}
