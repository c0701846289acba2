package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"stillpoint.dev/still/pkg/glyph"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
	"stillpoint.dev/still/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" sit")
	default:
		_, _ = c.Println(" sits")
	}
}

// Sessions prints listing rows for sessions.
func (pp *PrettyPrint) Sessions(sessions ...viewmodel.SessionSummary) {
	if len(sessions) == 0 {
		pp.none()
		return
	}
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, s := range sessions {
		if pp.ShowID {
			_, _ = y.Print(s.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(s.ID))))
		}
		_, _ = t.Printf("%s %s • %s • notes: %d\n",
			glyph.Session.String(),
			s.StartedAt.Local().Format("15:04"),
			timeutil.FormatClock(s.DurationSec),
			s.NoteCount)
	}
	_, _ = t.Println("")
}

// Notes prints the entries of a session detail view.
func (pp *PrettyPrint) Notes(notes ...*journal.Entry) {
	if len(notes) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, n := range notes {
		if n == nil {
			continue
		}
		if pp.ShowID {
			_, _ = y.Print(n.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(n.ID))))
		}
		_, _ = t.Printf("%s %s  %s\n", glyph.ForKind(n.Kind).String(), n.Kind.Label(), n.Text)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Printf("  %s\n", n.CreatedAt.Local().Format("02.01.2006 15:04"))
	}
	_, _ = t.Println("")
}

// Stats prints the aggregate counters as a table.
func (pp *PrettyPrint) Stats(st viewmodel.Stats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("meditations", st.Meditations)
	tbl.AddRow("intentions", st.Intentions)
	tbl.AddRow("insights", st.Insights)
	tbl.AddRow("ideas", st.Ideas)
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("meditations today: %d\n", st.Today)
}

// Archive prints every month group with its sessions.
func (pp *PrettyPrint) Archive(groups ...viewmodel.ArchiveGroup) {
	if len(groups) == 0 {
		pp.none()
		return
	}
	for _, g := range groups {
		pp.TitleWithCount(strings.ToUpper(g.Label), len(g.Sessions))
		pp.Sessions(g.Sessions...)
	}
}

// Reminders prints the reminder list ordered by time of day.
func (pp *PrettyPrint) Reminders(reminders ...*journal.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range reminders {
		if r == nil {
			continue
		}
		state := "on"
		if !r.Enabled {
			state = "off"
		}
		if pp.ShowID {
			tbl.AddRow(r.ID, r.Time, state, r.Label)
		} else {
			tbl.AddRow(r.Time, state, r.Label)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
