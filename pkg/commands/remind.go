package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/commands/options"
	"stillpoint.dev/still/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remind",
		Aliases: []string{"reminders"},
		Short:   "Manage daily sit reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemindAdd(cmd)
	addRemindList(cmd)
	addRemindToggle(cmd, "on", true, "Enable a reminder")
	addRemindToggle(cmd, "off", false, "Disable a reminder")
	addRemindRemove(cmd)
	addRemindTick(cmd)
	addRemindServe(cmd)

	topLevel.AddCommand(cmd)
}

func addRemindAdd(parent *cobra.Command) {
	io := &options.IDOptions{}
	var clock, label string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a daily reminder at HH:MM",
		Example: `
still remind add 07:30
still remind add 19:00 evening sit
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a time as HH:MM")
			}
			clock = args[0]
			label = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			a := remind.Add{
				Clock:   clock,
				Label:   label,
				ShowID:  io.ShowID,
				Service: svc,
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addRemindList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List reminders by time of day",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			l := remind.List{
				ShowID:  io.ShowID,
				Service: svc,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addRemindToggle(parent *cobra.Command, use string, enabled bool, short string) {
	var id string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
still remind ` + use + ` <reminder-id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			t := remind.Toggle{
				ID:      id,
				Enabled: enabled,
				Service: svc,
			}
			return t.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

func addRemindRemove(parent *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove a reminder",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			r := remind.Remove{
				ID:      id,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

func addRemindTick(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Run a single reminder check for the current minute",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			t := remind.Tick{
				Service: svc,
			}
			return t.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

func addRemindServe(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Poll for due reminders until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := remind.Serve{
				Service: svc,
			}
			return s.Do(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}
