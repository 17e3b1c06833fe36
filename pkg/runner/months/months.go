// Package months prints a partitioned month range without the TUI.
package months

import (
	"tableflip.dev/vertcal/pkg/config"
	"tableflip.dev/vertcal/pkg/printers"
	"tableflip.dev/vertcal/pkg/span"
)

// Months walks downward pages from the anchor and pretty-prints them.
type Months struct {
	Options config.Options

	// Count caps the number of printed months when the range has no end
	// bound.
	Count int
}

func (n *Months) Do() error {
	p, err := n.Options.Partitioner()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Locale: n.Options.Locale}

	count := n.Count
	if count < 1 {
		count = 3
	}

	for page := 1; ; page++ {
		m, terminal, err := p.Page(page, span.TowardEnd)
		if err != nil {
			return err
		}
		pp.Month(m, p.FirstWeekday(), p.Column)
		if terminal {
			pp.Completed(span.TowardEnd)
			return nil
		}
		if !p.Bounded(span.TowardEnd) && page >= count {
			return nil
		}
	}
}
