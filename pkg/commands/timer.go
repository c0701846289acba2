package commands

import (
	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/commands/options"
	"stillpoint.dev/still/pkg/runner/tui"
)

func addTimer(topLevel *cobra.Command) {
	do := &options.DurationOptions{}

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Open the full-screen countdown timer",
		Example: `
still timer
still timer --for 45m
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			durationSec, err := do.GetSeconds()
			if err != nil {
				return err
			}
			svc, p, err := newService()
			if err != nil {
				return err
			}
			if durationSec > 0 {
				if err := svc.SetTimerDuration(cmd.Context(), durationSec); err != nil {
					return err
				}
			}
			return tui.Run(cmd.Context(), svc, p)
		},
	}

	options.AddDurationArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
