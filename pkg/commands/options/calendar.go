// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vertcal/pkg/config"
)

const layoutISO = "2006-01-02"

// CalendarOptions captures the flags shared by the calendar commands.
type CalendarOptions struct {
	AnchorString string
	StartString  string
	EndString    string
	Locale       string
	Threshold    int
	Offset       int
}

// AddCalendarArgs wires the shared calendar flags on the provided command.
func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.AnchorString, "anchor", "",
		`Date the view opens on, example: --anchor="2021-06-15". Defaults to today.`)
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`First scrollable date; omit for unbounded upward pagination.`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`Last scrollable date; omit for unbounded downward pagination.`)
	cmd.Flags().StringVarP(&o.Locale, "locale", "l", "",
		`Language code for month and weekday labels, example: fr.`)
	cmd.Flags().IntVar(&o.Threshold, "threshold", 0,
		`Prefetch threshold: load the next month when fewer unseen months remain.`)
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		`Initial page offset applied to both pagination directions.`)
}

// Resolve merges ambient configuration with the flags and validates the
// result. The anchor defaults to today, clamped into the bounds.
func (o *CalendarOptions) Resolve() (config.Options, error) {
	base, err := config.Load()
	if err != nil {
		return config.Options{}, err
	}

	if o.Locale != "" {
		base.Locale = o.Locale
	}
	if o.Threshold > 0 {
		base.PrefetchThreshold = o.Threshold
	}
	if o.Offset > 0 {
		base.InitialPageOffset = o.Offset
	}
	if base.Start, err = overrideDate(base.Start, o.StartString, "start"); err != nil {
		return config.Options{}, err
	}
	if base.End, err = overrideDate(base.End, o.EndString, "end"); err != nil {
		return config.Options{}, err
	}

	if o.AnchorString != "" {
		if base.Anchor, err = parseDate(o.AnchorString, "anchor"); err != nil {
			return config.Options{}, err
		}
	} else {
		base.Anchor = clampToBounds(time.Now(), base.Start, base.End)
	}

	if err := base.Validate(); err != nil {
		return config.Options{}, err
	}
	return base, nil
}

func overrideDate(current time.Time, raw, name string) (time.Time, error) {
	if raw == "" {
		return current, nil
	}
	return parseDate(raw, name)
}

func parseDate(raw, name string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", name, raw, err)
	}
	return t, nil
}

func clampToBounds(t, start, end time.Time) time.Time {
	if !start.IsZero() && t.Before(start) {
		return start
	}
	if !end.IsZero() && t.After(end) {
		return end
	}
	return t
}
