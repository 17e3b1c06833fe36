package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vertcal/pkg/commands/options"
	"tableflip.dev/vertcal/pkg/runner/months"
)

func addMonths(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	count := 0

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Print the month grids of the configured range.",
		Example: `
vertcal months --start=2021-01-01 --end=2021-03-31
vertcal months --count=6
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := co.Resolve()
			if err != nil {
				return err
			}
			m := months.Months{Options: opts, Count: count}
			return m.Do()
		},
	}
	options.AddCalendarArgs(cmd, co)
	cmd.Flags().IntVar(&count, "count", 3,
		"Months to print when no end date bounds the range.")

	topLevel.AddCommand(cmd)
}
