package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/commands/options"
	"stillpoint.dev/still/pkg/runner/view"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List today's sessions",
		Example: `
still today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			t := view.Today{
				ShowID:  io.ShowID,
				Service: svc,
			}
			return t.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addArchive(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "List every session grouped by month",
		Example: `
still archive
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			a := view.Archive{
				ShowID:  io.ShowID,
				Service: svc,
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var sessionID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one session and its notes",
		Example: `
still show <session-id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			sessionID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := view.Show{
				SessionID: sessionID,
				ShowID:    io.ShowID,
				Service:   svc,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice totals",
		Example: `
still stats
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := view.Stats{
				Service: svc,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
