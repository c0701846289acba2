// Package timeutil parses and formats the durations used by the timer.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseDuration parses a human-friendly duration string (for example "10m",
// "1h30m", or "90s") into whole seconds. Bare numbers are read as minutes.
func ParseDuration(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, fmt.Errorf("timeutil: empty duration")
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("timeutil: duration must not be negative")
		}
		return n * 60, nil
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("timeutil: invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}
	return int(total / time.Second), nil
}

// FormatClock renders seconds the way the timer readout shows them:
// MM:SS, or HH:MM:SS once an hour or more remains.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatHuman renders seconds compactly for listings ("10m", "1h5m", "45s").
func FormatHuman(sec int) string {
	if sec <= 0 {
		return "0s"
	}
	d := time.Duration(sec) * time.Second
	var parts []string
	if h := d / time.Hour; h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
		d -= m * time.Minute
	}
	if s := d / time.Second; s > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, "")
}
