package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-day form used to anchor sessions and entries.
const DateLayout = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// DateOf derives the calendar-day string for an instant.
func DateOf(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Today is DateOf for the current wall clock.
func Today() string {
	return DateOf(time.Now())
}

// Timestamp is a time.Time that round-trips as an RFC3339 JSON string.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
