// Package journal defines the persisted data model for the meditation
// journal: sessions, the notes attached to them, and reminders.
package journal

import (
	"fmt"
	"strings"
)

// Kind identifies what sort of note an entry holds.
type Kind string

const (
	// KindIntention is set before a sit; at most one per session.
	KindIntention Kind = "INTENTION"
	// KindInsight is a note captured during or right after a sit.
	KindInsight Kind = "INSIGHT"
	// KindIdea is a note captured later in the day.
	KindIdea Kind = "IDEA"
)

// Kinds returns the list of supported entry kinds.
func Kinds() []Kind {
	return []Kind{
		KindIntention,
		KindInsight,
		KindIdea,
	}
}

// ParseKind converts a string to a Kind or returns an error for unknown tags.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(raw)))
	for _, candidate := range Kinds() {
		if candidate == k {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("journal: unknown entry kind %q", raw)
}

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindIntention:
		return "Intention"
	case KindInsight:
		return "Insight"
	case KindIdea:
		return "Idea"
	default:
		return string(k)
	}
}
