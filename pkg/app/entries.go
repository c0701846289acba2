package app

import (
	"context"
	"strings"

	"stillpoint.dev/still/pkg/journal"
)

// SessionForNotes resolves the session new notes should attach to:
// the current session if the pointer is set and live, else the most recently
// started session today, else nil.
func (s *Service) SessionForNotes(ctx context.Context) (*journal.Session, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	if sess := s.doc.FindSession(s.doc.CurrentSessionID); sess != nil {
		return sess, nil
	}
	return s.doc.LatestSessionForDate(s.today()), nil
}

// resolveTargetSessionID picks the session id for a brand new entry. Unlike
// SessionForNotes it trusts a set current pointer without resolving it; the
// pointer is cleared on delete so it can only dangle transiently.
func (s *Service) resolveTargetSessionID() string {
	if s.doc.CurrentSessionID != "" {
		return s.doc.CurrentSessionID
	}
	if latest := s.doc.LatestSessionForDate(s.today()); latest != nil {
		return latest.ID
	}
	return ""
}

// AddEntry appends a note of the given kind. Empty or whitespace-only text is
// a no-op returning (nil, nil), not an error. When no session can be resolved
// the entry is anchored by date alone.
func (s *Service) AddEntry(ctx context.Context, kind journal.Kind, text string) (*journal.Entry, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	value := strings.TrimSpace(text)
	if value == "" {
		return nil, nil
	}

	e := journal.NewEntry(kind, value, s.resolveTargetSessionID(), s.Now())
	s.doc.Entries = append(s.doc.Entries, e)
	if err := s.save(); err != nil {
		return nil, err
	}
	return e, nil
}

// SaveIntention upserts the intention for the notes-target session: an
// existing INTENTION entry is rewritten in place (text and createdAt),
// otherwise one is created. With no session to attach to, the text is held as
// the transient pending intention until the next session starts.
func (s *Service) SaveIntention(ctx context.Context, text string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	value := strings.TrimSpace(text)
	if value == "" {
		return nil
	}

	session, err := s.SessionForNotes(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		s.doc.PendingIntention = value
		return s.save()
	}

	s.doc.PendingIntention = ""
	if existing := s.doc.IntentionForSession(session.ID); existing != nil {
		existing.Text = value
		existing.CreatedAt = journal.Timestamp{Time: s.Now()}
		return s.save()
	}
	_, err = s.AddEntry(ctx, journal.KindIntention, value)
	return err
}

// ClearIntention drops the pending intention and, when a notes-target session
// exists, deletes its INTENTION entry. Other entry kinds are untouched.
func (s *Service) ClearIntention(ctx context.Context) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	session, err := s.SessionForNotes(ctx)
	if err != nil {
		return err
	}
	s.doc.PendingIntention = ""

	if session != nil {
		entries := s.doc.Entries[:0]
		for _, e := range s.doc.Entries {
			if e != nil && e.Kind == journal.KindIntention && e.SessionID == session.ID {
				continue
			}
			entries = append(entries, e)
		}
		s.doc.Entries = entries
	}
	return s.save()
}

// EditEntry rewrites the text of an entry in place. A stale id is a silent
// no-op. Empty text is a no-op too, except for INTENTION entries where it
// routes to ClearIntention: saving nothing from the intention editor deletes
// the intention rather than leaving an empty note.
func (s *Service) EditEntry(ctx context.Context, id, text string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	e := s.doc.FindEntry(id)
	if e == nil {
		return nil
	}
	value := strings.TrimSpace(text)
	if value == "" {
		if e.Kind == journal.KindIntention {
			return s.ClearIntention(ctx)
		}
		return nil
	}
	e.Text = value
	return s.save()
}

// DeleteEntry removes a note by id. Unknown ids are a silent no-op.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	if s.doc.FindEntry(id) == nil {
		return nil
	}
	entries := s.doc.Entries[:0]
	for _, e := range s.doc.Entries {
		if e != nil && e.ID != id {
			entries = append(entries, e)
		}
	}
	s.doc.Entries = entries
	return s.save()
}
