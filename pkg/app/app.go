// Package app owns the in-memory journal document and all mutation logic.
// Every mutating operation persists the full document as its final step.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/store"
)

// MaxTimerDurationSec caps the countdown length at six hours.
const MaxTimerDurationSec = 6 * 60 * 60

// hitLedgerRetention bounds reminder-hit ledger growth. Keys older than this
// are dropped whenever a tick persists.
const hitLedgerRetention = 90 * 24 * time.Hour

// Service provides the journal operations shared by the CLI, the timer view,
// and the MCP server. It is an explicit value; build one per process (or per
// test) rather than reaching for a global.
type Service struct {
	Persistence store.Persistence

	// Now is the wall clock, swappable in tests.
	Now func() time.Time

	doc *journal.Document
}

// New builds a Service over the given persistence.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p, Now: time.Now}
}

// Document exposes the loaded state for read-model construction. Callers must
// not mutate it.
func (s *Service) Document(ctx context.Context) (*journal.Document, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// Reload discards the cached document and re-reads it from persistence. Used
// when another process wrote the store (seen via store.Watch).
func (s *Service) Reload(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	s.doc = s.Persistence.Load(ctx)
	return nil
}

func (s *Service) ensure(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.doc == nil {
		s.doc = s.Persistence.Load(ctx)
	}
	return nil
}

func (s *Service) save() error {
	return s.Persistence.Save(s.doc)
}

func (s *Service) today() string {
	return journal.DateOf(s.Now())
}

// StartSession records a sit of the given duration beginning now, marks it
// completed, points current/selected at it, and promotes any pending
// intention into a real INTENTION entry on the new session.
func (s *Service) StartSession(ctx context.Context, durationSec int) (*journal.Session, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	startedAt := s.Now()
	session := journal.NewSession(durationSec, startedAt)
	s.doc.Sessions = append(s.doc.Sessions, session)
	s.doc.CurrentSessionID = session.ID
	s.doc.SelectedSessionID = session.ID

	if pending := strings.TrimSpace(s.doc.PendingIntention); pending != "" {
		s.doc.Entries = append(s.doc.Entries,
			journal.NewEntry(journal.KindIntention, pending, session.ID, startedAt))
		s.doc.PendingIntention = ""
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession removes a session and cascades to every entry anchored to it.
// Current/selected pointers referencing it are cleared. Unknown ids are a
// silent no-op.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	if s.doc.FindSession(id) == nil {
		return nil
	}

	sessions := s.doc.Sessions[:0]
	for _, sess := range s.doc.Sessions {
		if sess != nil && sess.ID != id {
			sessions = append(sessions, sess)
		}
	}
	s.doc.Sessions = sessions

	entries := s.doc.Entries[:0]
	for _, e := range s.doc.Entries {
		if e != nil && e.SessionID != id {
			entries = append(entries, e)
		}
	}
	s.doc.Entries = entries

	if s.doc.CurrentSessionID == id {
		s.doc.CurrentSessionID = ""
	}
	if s.doc.SelectedSessionID == id {
		s.doc.SelectedSessionID = ""
	}
	return s.save()
}

// SelectSession marks a session as open in the archive detail view.
func (s *Service) SelectSession(ctx context.Context, id string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	if s.doc.FindSession(id) == nil {
		return nil
	}
	s.doc.SelectedSessionID = id
	return s.save()
}

// SetTimerDuration persists the countdown length setting, clamped to
// [0, MaxTimerDurationSec].
func (s *Service) SetTimerDuration(ctx context.Context, durationSec int) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	if durationSec < 0 {
		durationSec = 0
	}
	if durationSec > MaxTimerDurationSec {
		durationSec = MaxTimerDurationSec
	}
	s.doc.TimerDurationSec = durationSec
	return s.save()
}
