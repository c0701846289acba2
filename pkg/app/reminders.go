package app

import (
	"context"
	"time"

	"stillpoint.dev/still/pkg/journal"
)

// Fire is the "reminder due" signal handed to the notification layer.
type Fire struct {
	ReminderID string
	Label      string
}

// AddReminder appends an enabled reminder for the given "HH:MM" time.
func (s *Service) AddReminder(ctx context.Context, clock, label string) (*journal.Reminder, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	r, err := journal.NewReminder(clock, label)
	if err != nil {
		return nil, err
	}
	s.doc.Reminders = append(s.doc.Reminders, r)
	if err := s.save(); err != nil {
		return nil, err
	}
	return r, nil
}

// ToggleReminder enables or disables a reminder. Unknown ids are a no-op.
func (s *Service) ToggleReminder(ctx context.Context, id string, enabled bool) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	for _, r := range s.doc.Reminders {
		if r != nil && r.ID == id {
			r.Enabled = enabled
			return s.save()
		}
	}
	return nil
}

// DeleteReminder removes a reminder by id. Unknown ids are a no-op.
func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	found := false
	reminders := s.doc.Reminders[:0]
	for _, r := range s.doc.Reminders {
		if r != nil && r.ID == id {
			found = true
			continue
		}
		reminders = append(reminders, r)
	}
	s.doc.Reminders = reminders
	if !found {
		return nil
	}
	return s.save()
}

// Tick checks every enabled reminder against the current minute and returns
// the ones due now. The hit ledger guarantees at most one fire per reminder
// per calendar day however often the poll runs; a poll that skips the exact
// minute misses the reminder entirely (accepted best-effort behavior).
func (s *Service) Tick(ctx context.Context, now time.Time) ([]Fire, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	hhmm := journal.ClockOf(now)
	date := journal.DateOf(now)

	var fires []Fire
	for _, r := range s.doc.Reminders {
		if r == nil || !r.Enabled || r.Time != hhmm {
			continue
		}
		key := journal.HitKey(r.ID, date)
		if s.doc.ReminderHits[key] {
			continue
		}
		s.doc.ReminderHits[key] = true
		fires = append(fires, Fire{ReminderID: r.ID, Label: r.Label})
	}

	if len(fires) == 0 {
		return nil, nil
	}
	s.doc.PruneHits(date, hitLedgerRetention)
	if err := s.save(); err != nil {
		return fires, err
	}
	return fires, nil
}
