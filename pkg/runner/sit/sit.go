package sit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/timer"
	"stillpoint.dev/still/pkg/timeutil"
)

// Sit records a meditation session and, unless detached, runs the countdown
// inline. The session is recorded completed the moment it starts; stopping
// the countdown early does not retract it.
type Sit struct {
	DurationSec int // 0 means: use the persisted timer setting
	Detach      bool
	ShowID      bool

	Service *app.Service
}

func (n *Sit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sit, no service")
	}

	doc, err := n.Service.Document(ctx)
	if err != nil {
		return err
	}

	durationSec := n.DurationSec
	if durationSec <= 0 {
		durationSec = doc.TimerDurationSec
	} else if durationSec != doc.TimerDurationSec {
		// Remember the last explicitly chosen length.
		if err := n.Service.SetTimerDuration(ctx, durationSec); err != nil {
			return err
		}
		durationSec = min(durationSec, app.MaxTimerDurationSec)
	}

	session, err := n.Service.StartSession(ctx, durationSec)
	if err != nil {
		return err
	}

	t := color.New()
	f := color.New(color.Faint)
	if n.ShowID {
		_, _ = f.Println(session.ID)
	}
	_, _ = t.Printf("sitting for %s\n", timeutil.FormatHuman(durationSec))

	if n.Detach {
		return nil
	}

	c := timer.New(durationSec)
	c.Start(time.Now())

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Reset()
			fmt.Println("")
			_, _ = f.Println("countdown stopped; the session stays recorded")
			return nil
		case <-ticker.C:
			remaining, finished := c.Sync(time.Now())
			fmt.Printf("\r%s  ", timeutil.FormatClock(remaining))
			if finished {
				fmt.Print("\a\n")
				_, _ = t.Println("session complete")
				return nil
			}
		}
	}
}
