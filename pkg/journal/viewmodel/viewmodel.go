// Package viewmodel derives the read models presented by the CLI, the timer
// view, and the MCP surface. Everything here is a pure function of the
// journal document.
package viewmodel

import (
	"sort"
	"time"

	"stillpoint.dev/still/pkg/journal"
)

const monthFormat = "January 2006"

// Stats aggregates completed sits and note counts across all time, plus
// today's sit count.
type Stats struct {
	Meditations int
	Intentions  int
	Insights    int
	Ideas       int
	Today       int
}

// SessionSummary is a listing row for one session.
type SessionSummary struct {
	ID          string
	Date        string
	StartedAt   time.Time
	DurationSec int
	Completed   bool
	NoteCount   int
}

// ArchiveGroup buckets sessions by calendar month for browsing.
type ArchiveGroup struct {
	Year     int
	Month    time.Month
	Label    string
	Sessions []SessionSummary
}

// Detail is a session opened in the archive, with its ordered notes.
// Found is false when the id is stale (for example, already deleted).
type Detail struct {
	Found   bool
	Session *journal.Session
	Notes   []*journal.Entry
}

// BuildStats counts completed sessions and entries by kind.
func BuildStats(d *journal.Document, today string) Stats {
	var st Stats
	for _, s := range d.Sessions {
		if s == nil || !s.Completed {
			continue
		}
		st.Meditations++
		if s.Date == today {
			st.Today++
		}
	}
	for _, e := range d.Entries {
		if e == nil {
			continue
		}
		switch e.Kind {
		case journal.KindIntention:
			st.Intentions++
		case journal.KindInsight:
			st.Insights++
		case journal.KindIdea:
			st.Ideas++
		}
	}
	return st
}

// TodaySessions lists today's sessions, most recently started first.
func TodaySessions(d *journal.Document, today string) []SessionSummary {
	sessions := d.SessionsForDate(today)
	out := make([]SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, summarize(d, s))
	}
	return out
}

// ArchiveGroups buckets every session by (year, month) of its start instant.
// Groups come newest month first; sessions within a group are ordered by
// start time descending.
func ArchiveGroups(d *journal.Document) []ArchiveGroup {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key][]*journal.Session)
	for _, s := range d.Sessions {
		if s == nil {
			continue
		}
		started := s.StartedAt.Local()
		k := key{year: started.Year(), month: started.Month()}
		buckets[k] = append(buckets[k], s)
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	groups := make([]ArchiveGroup, 0, len(keys))
	for _, k := range keys {
		sessions := buckets[k]
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].StartedAt.After(sessions[j].StartedAt.Time)
		})
		g := ArchiveGroup{
			Year:  k.year,
			Month: k.month,
			Label: time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.Local).Format(monthFormat),
		}
		for _, s := range sessions {
			g.Sessions = append(g.Sessions, summarize(d, s))
		}
		groups = append(groups, g)
	}
	return groups
}

// SessionDetail resolves one session and its notes for the detail view.
func SessionDetail(d *journal.Document, id string) Detail {
	s := d.FindSession(id)
	if s == nil {
		return Detail{}
	}
	return Detail{
		Found:   true,
		Session: s,
		Notes:   d.EntriesForSession(id),
	}
}

// Reminders lists reminders ordered by time of day ascending.
func Reminders(d *journal.Document) []*journal.Reminder {
	out := make([]*journal.Reminder, 0, len(d.Reminders))
	for _, r := range d.Reminders {
		if r != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

func summarize(d *journal.Document, s *journal.Session) SessionSummary {
	return SessionSummary{
		ID:          s.ID,
		Date:        s.Date,
		StartedAt:   s.StartedAt.Time,
		DurationSec: s.DurationSec,
		Completed:   s.Completed,
		NoteCount:   d.LinkedEntryCount(s.ID),
	}
}
