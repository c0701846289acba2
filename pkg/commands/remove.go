package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove a session or a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveSit(cmd)
	addRemoveNote(cmd)

	topLevel.AddCommand(cmd)
}

func addRemoveSit(parent *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:     "sit",
		Aliases: []string{"session"},
		Short:   "Remove a session along with its notes",
		Example: `
still rm sit <session-id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			r := remove.Session{
				ID:      id,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

func addRemoveNote(parent *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Remove a single note",
		Example: `
still rm note <note-id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a note id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			r := remove.Note{
				ID:      id,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}
