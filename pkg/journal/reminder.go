package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultReminderLabel is used when a reminder is added without one.
const DefaultReminderLabel = "Time to sit."

// Reminder is a daily nudge at a fixed wall-clock minute. Independent of
// sessions and entries.
type Reminder struct {
	ID      string `json:"id"`
	Time    string `json:"time"` // "HH:MM"
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// NewReminder validates the clock value and builds an enabled reminder.
func NewReminder(clock, label string) (*Reminder, error) {
	normalized, err := ParseClock(clock)
	if err != nil {
		return nil, err
	}
	if label == "" {
		label = DefaultReminderLabel
	}
	return &Reminder{
		ID:      uuid.NewString(),
		Time:    normalized,
		Label:   label,
		Enabled: true,
	}, nil
}

// ParseClock validates an "HH:MM" value and returns it zero-padded.
func ParseClock(v string) (string, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", fmt.Errorf("journal: invalid reminder time %q (want HH:MM)", v)
	}
	return t.Format("15:04"), nil
}

// ClockOf formats an instant as the "HH:MM" value reminders match against.
func ClockOf(t time.Time) string {
	return t.Local().Format("15:04")
}

// HitKey builds the reminder-hit ledger key guaranteeing a reminder fires at
// most once per calendar day.
func HitKey(reminderID, date string) string {
	return reminderID + "_" + date
}
