// Package pager holds the sequential page-fetch state machine backing one
// pagination direction of the calendar. Two independent pagers (one per
// direction) share nothing; each is mutated only by its own fetch
// completion, so no locking is needed.
package pager

import (
	"tableflip.dev/vertcal/pkg/span"
)

// State describes where a pager is in its fetch cycle.
type State int

const (
	// StateIdle means no fetch is outstanding and more pages may exist.
	StateIdle State = iota
	// StateFetching means exactly one fetch is in flight.
	StateFetching
	// StateCompleted means the terminal page was loaded; no more fetches.
	StateCompleted
	// StateError means the last fetch failed; fetching halts until Retry.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateCompleted:
		return "completed"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Pager tracks a monotonically increasing page index for one direction and
// owns the append-only list of loaded month pages.
type Pager struct {
	dir   span.Direction
	next  int
	state State
	pages []span.Month
	err   error
}

// New returns an idle pager that will claim firstPage on its first Begin.
func New(dir span.Direction, firstPage int) *Pager {
	if firstPage < 1 {
		firstPage = 1
	}
	return &Pager{dir: dir, next: firstPage}
}

// Direction returns the direction this pager walks in.
func (p *Pager) Direction() span.Direction { return p.dir }

// State returns the current fetch state.
func (p *Pager) State() State { return p.state }

// Err returns the failure that drove the pager into StateError, if any.
func (p *Pager) Err() error { return p.err }

// Pages returns the loaded month pages in fetch order.
func (p *Pager) Pages() []span.Month { return p.pages }

// Len returns the number of loaded pages.
func (p *Pager) Len() int { return len(p.pages) }

// Begin claims the next page index and moves to StateFetching. It reports
// false without claiming when a fetch is already outstanding, the pager
// has completed, or it is halted on an error.
func (p *Pager) Begin() (int, bool) {
	if p.state != StateIdle {
		return 0, false
	}
	p.state = StateFetching
	return p.next, true
}

// Resolve appends the fetched page and returns to StateIdle, or to
// StateCompleted when the page was terminal. A resolve that arrives while
// no fetch is outstanding (for example after teardown) is dropped.
func (p *Pager) Resolve(m span.Month, terminal bool) {
	if p.state != StateFetching {
		return
	}
	p.pages = append(p.pages, m)
	p.next++
	p.err = nil
	if terminal {
		p.state = StateCompleted
		return
	}
	p.state = StateIdle
}

// Fail records the fetch failure and halts the pager until Retry. The
// failed page index is not consumed; Retry re-requests the same page.
func (p *Pager) Fail(err error) {
	if p.state != StateFetching {
		return
	}
	p.err = err
	p.state = StateError
}

// Retry clears an error state so the next Begin re-requests the failed
// page. It reports whether the pager was actually in StateError.
func (p *Pager) Retry() bool {
	if p.state != StateError {
		return false
	}
	p.err = nil
	p.state = StateIdle
	return true
}

// NeedsFetch reports whether a new fetch should start given the number of
// loaded-but-not-yet-visible pages and the configured prefetch threshold.
func (p *Pager) NeedsFetch(unseen, threshold int) bool {
	return p.state == StateIdle && unseen < threshold
}
