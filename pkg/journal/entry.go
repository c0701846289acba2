package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a user-authored note. SessionID may be empty, in which case the
// entry is anchored only by its date and surfaces on whichever session shares
// that date (the legacy association path).
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"createdAt"`
	Date      string    `json:"date"`
	SessionID string    `json:"sessionId,omitempty"`
	Kind      Kind      `json:"type"`
	Text      string    `json:"text"`
}

// NewEntry builds a note for the given session (empty sessionID allowed).
// Callers are responsible for rejecting empty text before construction.
func NewEntry(kind Kind, text, sessionID string, createdAt time.Time) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		CreatedAt: Timestamp{Time: createdAt},
		Date:      DateOf(createdAt),
		SessionID: sessionID,
		Kind:      kind,
		Text:      text,
	}
}
