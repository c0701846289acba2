package edit

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
)

// Edit rewrites the text of a note in place. Editing an intention to empty
// text deletes the intention instead.
type Edit struct {
	EntryID string
	Text    string

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit note, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	if doc.FindEntry(n.EntryID) == nil {
		_, _ = f.Println("no such note")
		return nil
	}
	if err := n.Service.EditEntry(ctx, n.EntryID, n.Text); err != nil {
		return err
	}
	t := color.New()
	_, _ = t.Println("note updated")
	return nil
}
