package journal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"INTENTION", KindIntention, false},
		{"insight", KindInsight, false},
		{"  Idea  ", KindIdea, false},
		{"musing", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("07:30"); err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	for _, bad := range []string{"7:30pm", "24:00", "0730", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q): expected error", bad)
		}
	}
}

func TestNewReminderDefaultsLabel(t *testing.T) {
	r, err := NewReminder("06:45", "  ")
	if err != nil {
		t.Fatalf("NewReminder: %v", err)
	}
	if r.Label != DefaultReminderLabel {
		t.Fatalf("expected default label, got %q", r.Label)
	}
	if !r.Enabled {
		t.Fatal("expected new reminder enabled")
	}
}

func TestEntriesForSessionIncludesSameDayUnanchored(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	session := NewSession(600, now)
	other := NewSession(600, now.Add(-25*time.Hour))

	linked := NewEntry(KindInsight, "linked", session.ID, now.Add(2*time.Minute))
	unanchored := NewEntry(KindIdea, "same day, no session", "", now.Add(time.Minute))
	otherDay := NewEntry(KindIdea, "different day", "", now.Add(-25*time.Hour))
	otherSession := NewEntry(KindInsight, "other session", other.ID, now)

	d := NewDocument()
	d.Sessions = []*Session{session, other}
	d.Entries = []*Entry{linked, unanchored, otherDay, otherSession}

	got := d.EntriesForSession(session.ID)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Creation order, oldest first.
	if got[0].ID != unanchored.ID || got[1].ID != linked.ID {
		t.Fatalf("unexpected order: %s then %s", got[0].Text, got[1].Text)
	}

	if got := d.EntriesForSession("missing"); len(got) != 0 {
		t.Fatalf("expected no entries for unknown session, got %d", len(got))
	}
}

func TestLinkedEntryCountIgnoresUnanchored(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	session := NewSession(600, now)

	d := NewDocument()
	d.Sessions = []*Session{session}
	d.Entries = []*Entry{
		NewEntry(KindInsight, "linked", session.ID, now),
		NewEntry(KindIdea, "unanchored", "", now),
	}

	if got := d.LinkedEntryCount(session.ID); got != 1 {
		t.Fatalf("expected 1 linked entry, got %d", got)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	d := &Document{}
	d.Normalize()

	if d.Sessions == nil || d.Entries == nil || d.Reminders == nil || d.ReminderHits == nil {
		t.Fatal("expected collections initialized")
	}
	if d.TimerDurationSec != DefaultTimerDurationSec {
		t.Fatalf("expected default duration, got %d", d.TimerDurationSec)
	}
}

func TestPruneHits(t *testing.T) {
	today := "2026-03-14"
	d := NewDocument()
	d.ReminderHits = map[string]bool{
		"r1_2026-03-14": true,
		"r1_2026-01-01": true,
		"r2_2025-11-02": true,
		"r3_garbage":    true,
	}

	d.PruneHits(today, 90*24*time.Hour)

	if !d.ReminderHits["r1_2026-03-14"] {
		t.Fatal("expected today's hit kept")
	}
	if !d.ReminderHits["r1_2026-01-01"] {
		t.Fatal("expected hit inside retention kept")
	}
	if d.ReminderHits["r2_2025-11-02"] {
		t.Fatal("expected stale hit pruned")
	}
	if !d.ReminderHits["r3_garbage"] {
		t.Fatal("expected unparseable key left alone")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

	b, err := json.Marshal(&Timestamp{Time: at})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var ts Timestamp
	if err := json.Unmarshal(b, &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.Time.Equal(at) {
		t.Fatalf("expected %v, got %v", at, ts.Time)
	}

	var zero Timestamp
	b, err = json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string for zero time, got %s", b)
	}
	var back Timestamp
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !back.Time.IsZero() {
		t.Fatalf("expected zero time, got %v", back.Time)
	}
}

func TestNewSessionDerivesFields(t *testing.T) {
	startedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	s := NewSession(600, startedAt)

	if s.ID == "" {
		t.Fatal("expected generated id")
	}
	if s.Date != "2026-03-14" {
		t.Fatalf("expected date from start time, got %s", s.Date)
	}
	if !s.Completed {
		t.Fatal("expected completed at creation")
	}
	if got := s.FinishedAt.Time.Sub(s.StartedAt.Time); got != 10*time.Minute {
		t.Fatalf("expected finish 10m after start, got %v", got)
	}

	neg := NewSession(-5, startedAt)
	if neg.DurationSec != 0 {
		t.Fatalf("expected negative duration clamped, got %d", neg.DurationSec)
	}
}
