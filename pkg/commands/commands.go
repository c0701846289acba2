package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "still",
		Short: base.Wrap80("Meditation journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSit(topLevel)
	addTimer(topLevel)
	addIntention(topLevel)
	addNote(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addToday(topLevel)
	addArchive(topLevel)
	addShow(topLevel)
	addStats(topLevel)
	addRemind(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

func newService() (*app.Service, store.Persistence, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	return app.New(p), p, nil
}
