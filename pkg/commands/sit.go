package commands

import (
	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/commands/options"
	"stillpoint.dev/still/pkg/runner/sit"
)

func addSit(topLevel *cobra.Command) {
	do := &options.DurationOptions{}
	io := &options.IDOptions{}
	detach := false

	cmd := &cobra.Command{
		Use:   "sit",
		Short: "Start a meditation session and run the countdown",
		Example: `
still sit
still sit --for 20m
still sit --detach
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			durationSec, err := do.GetSeconds()
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := sit.Sit{
				DurationSec: durationSec,
				Detach:      detach,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddDurationArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&detach, "detach", false,
		"Record the session without running the countdown.")

	topLevel.AddCommand(cmd)
}
