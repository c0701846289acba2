// Package remind manages reminders and runs the coarse polling loop that
// fires them.
package remind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
	"stillpoint.dev/still/pkg/printers"
)

// PollInterval is the coarse reminder-check cadence. The per-day hit ledger
// tolerates any cadence; polling slower than a minute can miss the matching
// minute entirely.
const PollInterval = 30 * time.Second

// Add appends an enabled reminder.
type Add struct {
	Clock   string
	Label   string
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add reminder, no service")
	}
	r, err := n.Service.AddReminder(ctx, n.Clock, n.Label)
	if err != nil {
		return err
	}
	if n.ShowID {
		f := color.New(color.Faint)
		_, _ = f.Println(r.ID)
	}
	t := color.New()
	_, _ = t.Printf("reminder set for %s\n", r.Time)
	return nil
}

// List prints reminders ordered by time of day.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list reminders, no service")
	}
	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Reminders")
	pp.Reminders(viewmodel.Reminders(doc)...)
	return nil
}

// Toggle enables or disables a reminder.
type Toggle struct {
	ID      string
	Enabled bool
	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle reminder, no service")
	}
	return n.Service.ToggleReminder(ctx, n.ID, n.Enabled)
}

// Remove deletes a reminder.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove reminder, no service")
	}
	return n.Service.DeleteReminder(ctx, n.ID)
}

// Tick runs one reminder check against the current minute.
type Tick struct {
	Service *app.Service
}

func (n *Tick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not tick reminders, no service")
	}
	fires, err := n.Service.Tick(ctx, time.Now())
	if err != nil {
		return err
	}
	notify(fires)
	return nil
}

// Serve polls until the context is cancelled, printing each reminder that
// comes due. Best effort: no catch-up for minutes missed while not running.
type Serve struct {
	Service *app.Service
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not serve reminders, no service")
	}
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	f := color.New(color.Faint)
	_, _ = f.Printf("watching reminders every %s\n", PollInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			fires, err := n.Service.Tick(ctx, now)
			if err != nil {
				fmt.Println(err)
				continue
			}
			notify(fires)
		}
	}
}

func notify(fires []app.Fire) {
	if len(fires) == 0 {
		return
	}
	t := color.New(color.Bold)
	for _, fire := range fires {
		label := fire.Label
		if label == "" {
			label = journal.DefaultReminderLabel
		}
		_, _ = t.Printf("\a%s\n", label)
	}
}
