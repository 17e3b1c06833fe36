// Package events defines the Bubble Tea messages the calendar widget
// emits toward its host model.
package events

import (
	"fmt"
	"time"

	"tableflip.dev/vertcal/pkg/span"
)

// DaySelectedMsg is emitted when the user activates a day cell.
type DaySelectedMsg struct {
	Date time.Time
}

// Describe renders the selection in a human-friendly format for logs.
func (m DaySelectedMsg) Describe() string {
	return fmt.Sprintf("day:%q", m.Date.Format("2006-01-02"))
}

// MonthLoadedMsg is emitted once per month page after it is loaded and
// rendered.
type MonthLoadedMsg struct {
	Year      int
	Month     time.Month
	Direction span.Direction
}

// Describe renders the load in a human-friendly format for logs.
func (m MonthLoadedMsg) Describe() string {
	return fmt.Sprintf("month:%q direction:%q", fmt.Sprintf("%s %d", m.Month, m.Year), m.Direction)
}

// PaginationCompletedMsg is emitted once per direction when that
// direction's bound is reached. It is never emitted for an unbounded
// direction.
type PaginationCompletedMsg struct {
	Direction span.Direction
}

// Describe renders the completion in a human-friendly format for logs.
func (m PaginationCompletedMsg) Describe() string {
	return fmt.Sprintf("direction:%q", m.Direction)
}

// PageErrorMsg is emitted when a page fetch fails. The failing direction
// halts until retried; the sibling direction is unaffected.
type PageErrorMsg struct {
	Direction span.Direction
	Err       error
}

// Describe renders the failure in a human-friendly format for logs.
func (m PageErrorMsg) Describe() string {
	return fmt.Sprintf("direction:%q err:%q", m.Direction, m.Err)
}
