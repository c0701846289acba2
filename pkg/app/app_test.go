package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/store"
)

type memoryPersistence struct {
	mu    sync.Mutex
	doc   *journal.Document
	saves int
}

func newMemoryPersistence(doc *journal.Document) *memoryPersistence {
	return &memoryPersistence{doc: cloneDocument(doc)}
}

func (m *memoryPersistence) Load(_ context.Context) *journal.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return journal.NewDocument()
	}
	return cloneDocument(m.doc)
}

func (m *memoryPersistence) Save(doc *journal.Document) error {
	if doc == nil {
		return errors.New("nil document")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = cloneDocument(doc)
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (m *memoryPersistence) saved() *journal.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneDocument(m.doc)
}

func cloneDocument(doc *journal.Document) *journal.Document {
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	cp := &journal.Document{}
	if err := json.Unmarshal(b, cp); err != nil {
		panic(err)
	}
	cp.Normalize()
	return cp
}

func newTestService(doc *journal.Document, now time.Time) (*Service, *memoryPersistence) {
	mp := newMemoryPersistence(doc)
	svc := New(mp)
	svc.Now = func() time.Time { return now }
	return svc, mp
}

func TestStartSessionPromotesPendingIntention(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)

	doc := journal.NewDocument()
	doc.PendingIntention = "  be here now  "
	svc, mp := newTestService(doc, now)

	session, err := svc.StartSession(ctx, 600)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if !session.Completed {
		t.Fatal("expected session completed at creation")
	}
	if session.Date != journal.DateOf(now) {
		t.Fatalf("expected session date %s, got %s", journal.DateOf(now), session.Date)
	}

	saved := mp.saved()
	if saved.CurrentSessionID != session.ID || saved.SelectedSessionID != session.ID {
		t.Fatalf("expected pointers at %s, got current=%s selected=%s",
			session.ID, saved.CurrentSessionID, saved.SelectedSessionID)
	}
	if saved.PendingIntention != "" {
		t.Fatalf("expected pending intention cleared, got %q", saved.PendingIntention)
	}
	if len(saved.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(saved.Entries))
	}
	e := saved.Entries[0]
	if e.Kind != journal.KindIntention || e.Text != "be here now" || e.SessionID != session.ID {
		t.Fatalf("unexpected promoted intention: %+v", e)
	}
}

func TestAddEntryResolvesTarget(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	early := journal.NewSession(600, now.Add(-2*time.Hour))
	late := journal.NewSession(600, now.Add(-time.Hour))

	t.Run("current pointer wins", func(t *testing.T) {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{early, late}
		doc.CurrentSessionID = early.ID
		svc, _ := newTestService(doc, now)

		e, err := svc.AddEntry(ctx, journal.KindInsight, "stillness")
		if err != nil {
			t.Fatalf("add entry: %v", err)
		}
		if e.SessionID != early.ID {
			t.Fatalf("expected entry on %s, got %s", early.ID, e.SessionID)
		}
	})

	t.Run("latest today when no current", func(t *testing.T) {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{early, late}
		svc, _ := newTestService(doc, now)

		e, err := svc.AddEntry(ctx, journal.KindIdea, "walk more")
		if err != nil {
			t.Fatalf("add entry: %v", err)
		}
		if e.SessionID != late.ID {
			t.Fatalf("expected entry on %s, got %s", late.ID, e.SessionID)
		}
	})

	t.Run("date anchored when no session", func(t *testing.T) {
		svc, _ := newTestService(journal.NewDocument(), now)

		e, err := svc.AddEntry(ctx, journal.KindIdea, "plant basil")
		if err != nil {
			t.Fatalf("add entry: %v", err)
		}
		if e.SessionID != "" {
			t.Fatalf("expected unanchored entry, got session %s", e.SessionID)
		}
		if e.Date != journal.DateOf(now) {
			t.Fatalf("expected date %s, got %s", journal.DateOf(now), e.Date)
		}
	})
}

func TestAddEntryEmptyTextIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, mp := newTestService(journal.NewDocument(), time.Now())

	e, err := svc.AddEntry(ctx, journal.KindInsight, "   ")
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if e != nil {
		t.Fatalf("expected no entry, got %+v", e)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no save, got %d", mp.saves)
	}
}

func TestSaveIntentionHeldPendingWithoutSession(t *testing.T) {
	ctx := context.Background()
	svc, mp := newTestService(journal.NewDocument(), time.Now())

	if err := svc.SaveIntention(ctx, "soften"); err != nil {
		t.Fatalf("save intention: %v", err)
	}

	saved := mp.saved()
	if saved.PendingIntention != "soften" {
		t.Fatalf("expected pending intention, got %q", saved.PendingIntention)
	}
	if len(saved.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(saved.Entries))
	}
}

func TestSaveIntentionUpsertsInPlace(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	session := journal.NewSession(600, now.Add(-time.Hour))
	doc := journal.NewDocument()
	doc.Sessions = []*journal.Session{session}
	doc.CurrentSessionID = session.ID
	svc, mp := newTestService(doc, now)

	if err := svc.SaveIntention(ctx, "first draft"); err != nil {
		t.Fatalf("save intention: %v", err)
	}
	if err := svc.SaveIntention(ctx, "final wording"); err != nil {
		t.Fatalf("save intention again: %v", err)
	}

	saved := mp.saved()
	var intentions []*journal.Entry
	for _, e := range saved.Entries {
		if e.Kind == journal.KindIntention {
			intentions = append(intentions, e)
		}
	}
	if len(intentions) != 1 {
		t.Fatalf("expected a single intention entry, got %d", len(intentions))
	}
	if intentions[0].Text != "final wording" {
		t.Fatalf("expected rewritten text, got %q", intentions[0].Text)
	}
}

func TestClearIntentionDeletesSessionIntention(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	session := journal.NewSession(600, now.Add(-time.Hour))
	doc := journal.NewDocument()
	doc.Sessions = []*journal.Session{session}
	doc.CurrentSessionID = session.ID
	doc.PendingIntention = "stale"
	doc.Entries = []*journal.Entry{
		journal.NewEntry(journal.KindIntention, "let go", session.ID, now.Add(-time.Hour)),
		journal.NewEntry(journal.KindInsight, "breath first", session.ID, now.Add(-30*time.Minute)),
	}
	svc, mp := newTestService(doc, now)

	if err := svc.ClearIntention(ctx); err != nil {
		t.Fatalf("clear intention: %v", err)
	}

	saved := mp.saved()
	if saved.PendingIntention != "" {
		t.Fatalf("expected pending cleared, got %q", saved.PendingIntention)
	}
	if len(saved.Entries) != 1 {
		t.Fatalf("expected only the insight to survive, got %d entries", len(saved.Entries))
	}
	if saved.Entries[0].Kind != journal.KindInsight {
		t.Fatalf("expected insight, got %s", saved.Entries[0].Kind)
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	doomed := journal.NewSession(600, now.Add(-2*time.Hour))
	keeper := journal.NewSession(600, now.Add(-time.Hour))
	doc := journal.NewDocument()
	doc.Sessions = []*journal.Session{doomed, keeper}
	doc.CurrentSessionID = doomed.ID
	doc.SelectedSessionID = doomed.ID
	doc.Entries = []*journal.Entry{
		journal.NewEntry(journal.KindIntention, "gone", doomed.ID, now.Add(-2*time.Hour)),
		journal.NewEntry(journal.KindInsight, "gone too", doomed.ID, now.Add(-90*time.Minute)),
		journal.NewEntry(journal.KindIdea, "kept", keeper.ID, now.Add(-time.Hour)),
	}
	svc, mp := newTestService(doc, now)

	if err := svc.DeleteSession(ctx, doomed.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	saved := mp.saved()
	if len(saved.Sessions) != 1 || saved.Sessions[0].ID != keeper.ID {
		t.Fatalf("expected only keeper session, got %d", len(saved.Sessions))
	}
	if len(saved.Entries) != 1 || saved.Entries[0].Text != "kept" {
		t.Fatalf("expected cascade delete of anchored notes, got %d entries", len(saved.Entries))
	}
	if saved.CurrentSessionID != "" || saved.SelectedSessionID != "" {
		t.Fatalf("expected pointers cleared, got current=%q selected=%q",
			saved.CurrentSessionID, saved.SelectedSessionID)
	}
}

func TestDeleteSessionUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, mp := newTestService(journal.NewDocument(), time.Now())

	if err := svc.DeleteSession(ctx, "no-such-session"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no save, got %d", mp.saves)
	}
}

func TestEditEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	session := journal.NewSession(600, now.Add(-time.Hour))
	intention := journal.NewEntry(journal.KindIntention, "let go", session.ID, now.Add(-time.Hour))
	insight := journal.NewEntry(journal.KindInsight, "breath first", session.ID, now.Add(-30*time.Minute))

	newDoc := func() *journal.Document {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{session}
		doc.CurrentSessionID = session.ID
		doc.Entries = []*journal.Entry{intention, insight}
		return doc
	}

	t.Run("rewrites text", func(t *testing.T) {
		svc, mp := newTestService(newDoc(), now)
		if err := svc.EditEntry(ctx, insight.ID, "breath, then posture"); err != nil {
			t.Fatalf("edit entry: %v", err)
		}
		saved := mp.saved()
		if e := saved.FindEntry(insight.ID); e == nil || e.Text != "breath, then posture" {
			t.Fatalf("expected rewritten insight, got %+v", e)
		}
	})

	t.Run("empty intention clears", func(t *testing.T) {
		svc, mp := newTestService(newDoc(), now)
		if err := svc.EditEntry(ctx, intention.ID, "  "); err != nil {
			t.Fatalf("edit entry: %v", err)
		}
		saved := mp.saved()
		if e := saved.FindEntry(intention.ID); e != nil {
			t.Fatalf("expected intention removed, got %+v", e)
		}
		if e := saved.FindEntry(insight.ID); e == nil {
			t.Fatal("expected insight untouched")
		}
	})

	t.Run("empty non-intention is a no-op", func(t *testing.T) {
		svc, mp := newTestService(newDoc(), now)
		if err := svc.EditEntry(ctx, insight.ID, ""); err != nil {
			t.Fatalf("edit entry: %v", err)
		}
		if mp.saves != 0 {
			t.Fatalf("expected no save, got %d", mp.saves)
		}
	})

	t.Run("stale id is a no-op", func(t *testing.T) {
		svc, mp := newTestService(newDoc(), now)
		if err := svc.EditEntry(ctx, "no-such-note", "text"); err != nil {
			t.Fatalf("edit entry: %v", err)
		}
		if mp.saves != 0 {
			t.Fatalf("expected no save, got %d", mp.saves)
		}
	})
}

func TestSessionForNotesPrecedence(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	yesterday := journal.NewSession(600, now.Add(-26*time.Hour))
	early := journal.NewSession(600, now.Add(-2*time.Hour))
	late := journal.NewSession(600, now.Add(-time.Hour))

	t.Run("live current pointer", func(t *testing.T) {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{yesterday, early, late}
		doc.CurrentSessionID = early.ID
		svc, _ := newTestService(doc, now)

		got, err := svc.SessionForNotes(ctx)
		if err != nil {
			t.Fatalf("session for notes: %v", err)
		}
		if got == nil || got.ID != early.ID {
			t.Fatalf("expected current session, got %+v", got)
		}
	})

	t.Run("dangling pointer falls back to latest today", func(t *testing.T) {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{yesterday, early, late}
		doc.CurrentSessionID = "deleted-session"
		svc, _ := newTestService(doc, now)

		got, err := svc.SessionForNotes(ctx)
		if err != nil {
			t.Fatalf("session for notes: %v", err)
		}
		if got == nil || got.ID != late.ID {
			t.Fatalf("expected latest session today, got %+v", got)
		}
	})

	t.Run("nil when nothing today", func(t *testing.T) {
		doc := journal.NewDocument()
		doc.Sessions = []*journal.Session{yesterday}
		svc, _ := newTestService(doc, now)

		got, err := svc.SessionForNotes(ctx)
		if err != nil {
			t.Fatalf("session for notes: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestTickFiresAtMostOncePerDay(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2026, 3, 14, 7, 30, 0, 0, time.Local)

	doc := journal.NewDocument()
	svc, mp := newTestService(doc, morning)

	r, err := svc.AddReminder(ctx, "07:30", "morning sit")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	fires, err := svc.Tick(ctx, morning)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(fires) != 1 || fires[0].ReminderID != r.ID || fires[0].Label != "morning sit" {
		t.Fatalf("expected one fire for %s, got %+v", r.ID, fires)
	}

	fires, err = svc.Tick(ctx, morning.Add(10*time.Second))
	if err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if len(fires) != 0 {
		t.Fatalf("expected dedup within the day, got %+v", fires)
	}

	nextDay := morning.Add(24 * time.Hour)
	fires, err = svc.Tick(ctx, nextDay)
	if err != nil {
		t.Fatalf("next-day tick: %v", err)
	}
	if len(fires) != 1 {
		t.Fatalf("expected refire the next day, got %+v", fires)
	}

	saved := mp.saved()
	if !saved.ReminderHits[journal.HitKey(r.ID, journal.DateOf(nextDay))] {
		t.Fatal("expected hit recorded for next day")
	}
}

func TestTickSkipsDisabledAndOffMinute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 7, 30, 0, 0, time.Local)

	svc, _ := newTestService(journal.NewDocument(), now)

	r, err := svc.AddReminder(ctx, "07:30", "")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if err := svc.ToggleReminder(ctx, r.ID, false); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if fires, err := svc.Tick(ctx, now); err != nil || len(fires) != 0 {
		t.Fatalf("expected no fires for disabled reminder, got %v %v", fires, err)
	}

	if err := svc.ToggleReminder(ctx, r.ID, true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	offMinute := time.Date(2026, 3, 14, 7, 31, 0, 0, time.Local)
	if fires, err := svc.Tick(ctx, offMinute); err != nil || len(fires) != 0 {
		t.Fatalf("expected no fires off the minute, got %v %v", fires, err)
	}
}

func TestSetTimerDurationClamps(t *testing.T) {
	ctx := context.Background()

	svc, mp := newTestService(journal.NewDocument(), time.Now())

	if err := svc.SetTimerDuration(ctx, MaxTimerDurationSec+60); err != nil {
		t.Fatalf("set timer duration: %v", err)
	}
	if got := mp.saved().TimerDurationSec; got != MaxTimerDurationSec {
		t.Fatalf("expected clamp to %d, got %d", MaxTimerDurationSec, got)
	}

	if err := svc.SetTimerDuration(ctx, -5); err != nil {
		t.Fatalf("set timer duration: %v", err)
	}
	// Zero round-trips through Normalize back to the default.
	if got := mp.saved().TimerDurationSec; got != journal.DefaultTimerDurationSec {
		t.Fatalf("expected default after clamp to zero, got %d", got)
	}
}
