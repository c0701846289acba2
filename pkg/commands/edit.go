package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	var entryID, text string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rewrite the text of a note",
		Example: `
still edit <note-id> the corrected text
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note id")
			}
			entryID = args[0]
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			e := edit.Edit{
				EntryID: entryID,
				Text:    text,
				Service: svc,
			}
			return e.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
