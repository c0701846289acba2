package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/commands/options"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Record an insight or an idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteKind(cmd, journal.KindInsight, "insight", "Record an insight from your sit")
	addNoteKind(cmd, journal.KindIdea, "idea", "Record an idea that surfaced")

	topLevel.AddCommand(cmd)
}

func addNoteKind(parent *cobra.Command, kind journal.Kind, use, short string) {
	io := &options.IDOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{use + "s"},
		Short:   short,
		Example: `
still note ` + use + ` something worth keeping
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a " + use)
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			n := note.Note{
				Kind:    kind,
				Text:    text,
				ShowID:  io.ShowID,
				Service: svc,
			}
			return n.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}
