package journal

import (
	"sort"
	"time"
)

// DefaultTimerDurationSec is the countdown length used until the user picks
// their own.
const DefaultTimerDurationSec = 600

// Document is the whole persisted state of the journal. It is written
// wholesale on every mutation; there is no partial update.
type Document struct {
	Sessions          []*Session      `json:"sessions"`
	Entries           []*Entry        `json:"entries"`
	Reminders         []*Reminder     `json:"reminders"`
	ReminderHits      map[string]bool `json:"reminderHits"`
	TimerDurationSec  int             `json:"timerDurationSec"`
	CurrentSessionID  string          `json:"currentSessionId,omitempty"`
	SelectedSessionID string          `json:"selectedSessionId,omitempty"`
	PendingIntention  string          `json:"pendingIntention"`
}

// NewDocument returns the default empty state.
func NewDocument() *Document {
	return &Document{
		Sessions:         []*Session{},
		Entries:          []*Entry{},
		Reminders:        []*Reminder{},
		ReminderHits:     map[string]bool{},
		TimerDurationSec: DefaultTimerDurationSec,
	}
}

// Normalize repairs a freshly loaded document so the rest of the code never
// has to nil-check collections or trust a bad duration.
func (d *Document) Normalize() {
	if d.Sessions == nil {
		d.Sessions = []*Session{}
	}
	if d.Entries == nil {
		d.Entries = []*Entry{}
	}
	if d.Reminders == nil {
		d.Reminders = []*Reminder{}
	}
	if d.ReminderHits == nil {
		d.ReminderHits = map[string]bool{}
	}
	if d.TimerDurationSec <= 0 {
		d.TimerDurationSec = DefaultTimerDurationSec
	}
}

// FindSession returns the session with the given id, or nil.
func (d *Document) FindSession(id string) *Session {
	if id == "" {
		return nil
	}
	for _, s := range d.Sessions {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}

// FindEntry returns the entry with the given id, or nil.
func (d *Document) FindEntry(id string) *Entry {
	if id == "" {
		return nil
	}
	for _, e := range d.Entries {
		if e != nil && e.ID == id {
			return e
		}
	}
	return nil
}

// SessionsForDate returns sessions on the given calendar day sorted by start
// time descending (most recent first).
func (d *Document) SessionsForDate(date string) []*Session {
	out := make([]*Session, 0)
	for _, s := range d.Sessions {
		if s != nil && s.Date == date {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt.Time)
	})
	return out
}

// LatestSessionForDate returns the most recently started session on the given
// day, or nil when the day has none.
func (d *Document) LatestSessionForDate(date string) *Session {
	sessions := d.SessionsForDate(date)
	if len(sessions) == 0 {
		return nil
	}
	return sessions[0]
}

// EntriesForSession returns the notes belonging to a session ordered by
// creation time ascending. An entry belongs when its sessionId matches, or
// when it has no sessionId and shares the session's date (legacy anchoring).
func (d *Document) EntriesForSession(id string) []*Entry {
	s := d.FindSession(id)
	if s == nil {
		return []*Entry{}
	}
	out := make([]*Entry, 0)
	for _, e := range d.Entries {
		if e == nil {
			continue
		}
		if e.SessionID == id || (e.SessionID == "" && e.Date == s.Date) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt.Time)
	})
	return out
}

// LinkedEntryCount counts notes whose sessionId matches exactly. Date-anchored
// legacy notes are not counted, matching how listings report note totals.
func (d *Document) LinkedEntryCount(sessionID string) int {
	n := 0
	for _, e := range d.Entries {
		if e != nil && e.SessionID == sessionID {
			n++
		}
	}
	return n
}

// IntentionForSession returns the session's INTENTION entry, or nil. The
// store keeps at most one via upsert; if older data carries several, the most
// recently written wins.
func (d *Document) IntentionForSession(sessionID string) *Entry {
	var found *Entry
	for _, e := range d.Entries {
		if e == nil || e.Kind != KindIntention || e.SessionID != sessionID {
			continue
		}
		if found == nil || e.CreatedAt.After(found.CreatedAt.Time) {
			found = e
		}
	}
	return found
}

// PruneHits drops reminder-hit ledger keys whose date component is older than
// keep relative to today. Malformed keys are kept untouched.
func (d *Document) PruneHits(today string, keep time.Duration) {
	cutoff, err := time.Parse(DateLayout, today)
	if err != nil {
		return
	}
	cutoff = cutoff.Add(-keep)
	for key := range d.ReminderHits {
		i := len(key) - len(DateLayout)
		if i <= 0 {
			continue
		}
		when, err := time.Parse(DateLayout, key[i:])
		if err != nil {
			continue
		}
		if when.Before(cutoff) {
			delete(d.ReminderHits, key)
		}
	}
}
