package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vertcal/pkg/commands/options"
	"tableflip.dev/vertcal/pkg/runner/view"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the scrolling calendar.",
		Example: `
vertcal ui
vertcal ui --start=2021-01-01 --end=2021-12-31 --locale=fr
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := co.Resolve()
			if err != nil {
				return err
			}
			v := view.View{Options: opts}
			return v.Do()
		},
	}
	options.AddCalendarArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
