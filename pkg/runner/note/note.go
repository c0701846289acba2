package note

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/glyph"
	"stillpoint.dev/still/pkg/journal"
)

// Note appends an insight or idea to the notes-target session.
type Note struct {
	Kind   journal.Kind
	Text   string
	ShowID bool

	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add note, no service")
	}

	e, err := n.Service.AddEntry(ctx, n.Kind, n.Text)
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	if e == nil {
		_, _ = f.Println("nothing to record")
		return nil
	}

	t := color.New()
	if n.ShowID {
		_, _ = f.Println(e.ID)
	}
	if e.SessionID == "" {
		_, _ = t.Printf("%s %s recorded for %s (no session today)\n",
			glyph.ForKind(e.Kind).String(), e.Kind.Label(), e.Date)
		return nil
	}
	_, _ = t.Printf("%s %s recorded\n", glyph.ForKind(e.Kind).String(), e.Kind.Label())
	return nil
}
