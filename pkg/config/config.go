// Package config carries the construction-time options for the calendar
// widget and validates them eagerly, so misconfiguration surfaces as an
// error before the first page is ever fetched.
package config

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vertcal/pkg/locale"
	"tableflip.dev/vertcal/pkg/span"
)

// FirstWeekdayLocale asks for the first weekday to be derived from the
// configured locale instead of being fixed.
const FirstWeekdayLocale time.Weekday = -1

// Options configures a calendar view. The zero value is not valid;
// start from Default.
type Options struct {
	// Anchor is the date the initial viewport centers on. It is required:
	// the widget never reads the wall clock, callers inject "today".
	Anchor time.Time

	// Start and End bound the scrollable range. A zero value leaves the
	// corresponding direction unbounded.
	Start time.Time
	End   time.Time

	// Locale drives month and weekday label formatting, for example "en",
	// "fr" or "pt-BR".
	Locale string

	// FirstWeekday fixes the grid's first column, or FirstWeekdayLocale
	// to follow the locale's convention.
	FirstWeekday time.Weekday

	// PrefetchThreshold is the number of loaded-but-not-yet-visible month
	// pages below which the next page is requested.
	PrefetchThreshold int

	// InitialPageOffset shifts both directions' starting page index.
	InitialPageOffset int
}

// Default returns the baseline options. An Anchor must still be set.
func Default() Options {
	return Options{
		Locale:            locale.Default,
		FirstWeekday:      FirstWeekdayLocale,
		PrefetchThreshold: 1,
	}
}

// ResolveFirstWeekday returns the effective first weekday.
func (o Options) ResolveFirstWeekday() time.Weekday {
	if o.FirstWeekday == FirstWeekdayLocale {
		return locale.FirstWeekday(o.Locale)
	}
	return o.FirstWeekday
}

// Validate rejects unusable options: a missing anchor, inverted bounds,
// an anchor outside the bounds, or a non-positive prefetch threshold.
func (o Options) Validate() error {
	if o.PrefetchThreshold < 1 {
		return fmt.Errorf("prefetch threshold must be at least 1, got %d", o.PrefetchThreshold)
	}
	if o.InitialPageOffset < 0 {
		return fmt.Errorf("initial page offset must not be negative, got %d", o.InitialPageOffset)
	}
	if o.FirstWeekday != FirstWeekdayLocale &&
		(o.FirstWeekday < time.Sunday || o.FirstWeekday > time.Saturday) {
		return fmt.Errorf("invalid first weekday %d", o.FirstWeekday)
	}
	if o.Anchor.IsZero() {
		return errors.New("anchor date is required")
	}
	_, err := span.New(o.Anchor, o.Start, o.End, o.ResolveFirstWeekday())
	return err
}

// Partitioner builds the month partitioner described by the options.
func (o Options) Partitioner() (*span.Partitioner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return span.New(o.Anchor, o.Start, o.End, o.ResolveFirstWeekday())
}
