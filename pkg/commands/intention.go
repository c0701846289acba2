package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/runner/intention"
)

func addIntention(topLevel *cobra.Command) {
	clear := false

	cmd := &cobra.Command{
		Use:     "intention",
		Aliases: []string{"int"},
		Short:   "Set, replace, or clear today's intention",
		Example: `
still intention be here now
still intention --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			i := intention.Intention{
				Text:    strings.Join(args, " "),
				Clear:   clear,
				Service: svc,
			}
			return i.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false,
		"Clear the pending intention and the current session's intention.")

	topLevel.AddCommand(cmd)
}
