// Package view holds the read-only runners: today's sessions, the monthly
// archive, a session detail, and the aggregate stats.
package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
	"stillpoint.dev/still/pkg/printers"
	"stillpoint.dev/still/pkg/timeutil"
)

// Today lists today's sessions, most recent first.
type Today struct {
	ShowID  bool
	Service *app.Service
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get today, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	today := journal.Today()
	items := viewmodel.TodaySessions(doc, today)
	pp.TitleWithCount("Today", len(items))
	pp.Sessions(items...)
	return nil
}

// Archive prints every month group.
type Archive struct {
	ShowID  bool
	Service *app.Service
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get archive, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Archive(viewmodel.ArchiveGroups(doc)...)
	return nil
}

// Show opens one session in archive detail: the session line plus its notes
// in creation order.
type Show struct {
	SessionID string
	ShowID    bool
	Service   *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show session, no service")
	}
	if err := n.Service.SelectSession(ctx, n.SessionID); err != nil {
		return err
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	detail := viewmodel.SessionDetail(doc, n.SessionID)
	if !detail.Found {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no such session; pick one from the archive")
		return nil
	}

	s := detail.Session
	pp.Title(fmt.Sprintf("%s at %s • %s",
		s.StartedAt.Local().Format("January 2, 2006"),
		s.StartedAt.Local().Format("15:04"),
		timeutil.FormatClock(s.DurationSec)))
	pp.Notes(detail.Notes...)
	return nil
}

// Stats prints the aggregate counters.
type Stats struct {
	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Stats(viewmodel.BuildStats(doc, journal.Today()))
	return nil
}
