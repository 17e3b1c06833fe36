// Package printers renders partitioned months for plain terminal output.
package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/vertcal/pkg/locale"
	"tableflip.dev/vertcal/pkg/span"
)

// PrettyPrint writes month grids to stdout.
type PrettyPrint struct {
	Locale string
}

// Title prints a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// NewLine prints a blank separator line.
func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Month prints one month page as a weekday-labelled grid. Empty months
// print nothing.
func (pp *PrettyPrint) Month(m span.Month, first time.Weekday, column func(time.Time) int) {
	if m.Empty() {
		return
	}
	h := color.New(color.FgWhite, color.Italic)
	_, _ = h.Println(locale.MonthYear(m.Year, m.Month, pp.Locale))

	tbl := uitable.New()
	labels := locale.WeekdayCells(pp.Locale, first)
	row := make([]interface{}, len(labels))
	for i, l := range labels {
		row[i] = l
	}
	tbl.AddRow(row...)

	for _, w := range m.Weeks {
		cells := make([]interface{}, 7)
		for i := range cells {
			cells[i] = ""
		}
		for day := w.FirstDay; !day.After(w.LastDay); day = day.AddDate(0, 0, 1) {
			cells[column(day)] = fmt.Sprintf("%2d", day.Day())
		}
		tbl.AddRow(cells...)
	}
	fmt.Println(tbl)
	pp.NewLine()
}

// Completed notes that a direction reached its bound.
func (pp *PrettyPrint) Completed(dir span.Direction) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("pagination completed (%s)\n", dir)
}
