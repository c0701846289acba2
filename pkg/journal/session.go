package journal

import (
	"time"

	"github.com/google/uuid"
)

// Session is one recorded meditation-timer run. Sessions are created when a
// countdown starts and are marked completed at creation; resetting the
// countdown before it ends does not retract the record.
type Session struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	StartedAt         Timestamp `json:"startedAt"`
	FinishedAt        Timestamp `json:"finishedAt"`
	DurationSec       int       `json:"durationSec"`
	Completed         bool      `json:"completed"`
	ManuallyUnchecked bool      `json:"manuallyUnchecked"`
}

// NewSession records a sit of the given duration starting at the given
// instant. Date is derived from startedAt once and never recomputed.
func NewSession(durationSec int, startedAt time.Time) *Session {
	if durationSec < 0 {
		durationSec = 0
	}
	return &Session{
		ID:          uuid.NewString(),
		Date:        DateOf(startedAt),
		StartedAt:   Timestamp{Time: startedAt},
		FinishedAt:  Timestamp{Time: startedAt.Add(time.Duration(durationSec) * time.Second)},
		DurationSec: durationSec,
		Completed:   true,
	}
}
