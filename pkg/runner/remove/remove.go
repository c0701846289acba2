// Package remove deletes sessions (cascading to their notes) and individual
// notes. Stale ids are silent no-ops.
package remove

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
)

// Session deletes a recorded sit and every note anchored to it.
type Session struct {
	ID      string
	Service *app.Service
}

func (n *Session) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove session, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	linked := doc.LinkedEntryCount(n.ID)
	if doc.FindSession(n.ID) == nil {
		f := color.New(color.Faint)
		_, _ = f.Println("no such session")
		return nil
	}
	if err := n.Service.DeleteSession(ctx, n.ID); err != nil {
		return err
	}
	t := color.New()
	switch linked {
	case 0:
		_, _ = t.Println("session removed")
	case 1:
		_, _ = t.Println("session removed along with 1 note")
	default:
		_, _ = t.Printf("session removed along with %d notes\n", linked)
	}
	return nil
}

// Note deletes a single note.
type Note struct {
	ID      string
	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove note, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	if doc.FindEntry(n.ID) == nil {
		f := color.New(color.Faint)
		_, _ = f.Println("no such note")
		return nil
	}
	if err := n.Service.DeleteEntry(ctx, n.ID); err != nil {
		return err
	}
	t := color.New()
	_, _ = t.Println("note removed")
	return nil
}
