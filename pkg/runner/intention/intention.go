package intention

import (
	"context"
	"errors"
	"strings"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/glyph"
)

// Intention saves or clears the intention for the notes-target session. With
// no session yet today, the text is held pending and promoted when the next
// session starts.
type Intention struct {
	Text  string
	Clear bool

	Service *app.Service
}

func (n *Intention) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save intention, no service")
	}

	t := color.New()
	f := color.New(color.Faint)

	// Saving an empty intention clears it rather than storing nothing.
	if n.Clear || strings.TrimSpace(n.Text) == "" {
		if err := n.Service.ClearIntention(ctx); err != nil {
			return err
		}
		_, _ = f.Println("intention cleared")
		return nil
	}

	if err := n.Service.SaveIntention(ctx, n.Text); err != nil {
		return err
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	if doc.PendingIntention != "" {
		_, _ = t.Printf("%s intention held until your next sit\n", glyph.Pending.String())
		return nil
	}
	_, _ = t.Println("intention saved")
	return nil
}
