// Package lifecycle derives display state for a match from its declared
// status and start instant. All functions are pure: the current time is an
// explicit parameter, never read from a global clock.
package lifecycle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is the declared status stored on a match record.
type Status string

const (
	// StatusScheduled is the default status for a match that has not started.
	StatusScheduled Status = "scheduled"
	// StatusLive marks a match explicitly flagged as in progress.
	StatusLive Status = "live"
	// StatusCompleted marks a finished match.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known declared statuses.
// The empty string is valid and means scheduled.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted, "":
		return true
	}
	return false
}

// Normalize maps the empty status to scheduled.
func (s Status) Normalize() Status {
	if s == "" {
		return StatusScheduled
	}
	return s
}

// DerivedState is the display-only lifecycle state, recomputed on every
// clock tick and never persisted.
type DerivedState string

const (
	// StateScheduled means the match starts in more than ten minutes.
	StateScheduled DerivedState = "scheduled"
	// StateSoon means the match starts within ten minutes.
	StateSoon DerivedState = "soon"
	// StateLive means the match is in progress, declared or by start time.
	StateLive DerivedState = "live"
	// StateCompleted means the match is over.
	StateCompleted DerivedState = "completed"
)

const (
	// SoonThreshold is how far before the start a match counts as "soon".
	SoonThreshold = 10 * time.Minute
	// PrematchWindow is the fixed window the progress bar fills toward
	// the start instant.
	PrematchWindow = 2 * time.Hour
	// MinProgress keeps the progress bar visually non-empty.
	MinProgress = 3
)

// Snapshot is the resolved display state for one match at one instant.
type Snapshot struct {
	State     DerivedState
	Remaining time.Duration
	Label     string
}

// ParseStart combines a "YYYY-MM-DD" date and a "HH:MM" time of day into a
// local wall-clock instant. It returns an error for any malformed input;
// it never panics, so listing code can skip bad records.
func ParseStart(date, startTime string) (time.Time, error) {
	y, m, d, err := splitDate(date)
	if err != nil {
		return time.Time{}, err
	}

	parts := strings.Split(startTime, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid start time %q: expected HH:MM", startTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}

	return time.Date(y, time.Month(m), d, hour, minute, 0, 0, time.Local), nil
}

// ParseDate parses a "YYYY-MM-DD" date into a local midnight instant.
func ParseDate(date string) (time.Time, error) {
	y, m, d, err := splitDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

func splitDate(date string) (year, month, day int, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return year, month, day, nil
}

// Resolve maps a declared status, a start instant and the current instant
// to a display snapshot. Declared completed and live short-circuit before
// any time-based derivation; a scheduled match whose start has passed is
// auto-promoted to live with the "Starting" label.
func Resolve(declared Status, start, now time.Time) Snapshot {
	remaining := start.Sub(now)

	switch declared.Normalize() {
	case StatusCompleted:
		return Snapshot{State: StateCompleted, Remaining: remaining, Label: "Ended"}
	case StatusLive:
		return Snapshot{State: StateLive, Remaining: remaining, Label: "In Progress"}
	}

	if remaining <= 0 {
		return Snapshot{State: StateLive, Remaining: remaining, Label: "Starting"}
	}

	state := StateScheduled
	if remaining <= SoonThreshold {
		state = StateSoon
	}
	return Snapshot{State: state, Remaining: remaining, Label: countdownLabel(remaining)}
}

// countdownLabel formats a positive remaining duration as HH:MM:SS when it
// is an hour or more, MM:SS otherwise. Fields are two-digit zero-padded and
// the duration is floored to whole seconds.
func countdownLabel(remaining time.Duration) string {
	total := int64(remaining / time.Second)
	seconds := total % 60
	minutes := (total / 60) % 60
	hours := total / 3600

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Progress returns the elapsed percentage of the fixed pre-match window
// ending at start, clamped to [MinProgress, 100]. Live and completed
// matches report 100.
func Progress(declared Status, start, now time.Time) int {
	switch declared.Normalize() {
	case StatusLive, StatusCompleted:
		return 100
	}

	remaining := start.Sub(now)
	if remaining <= 0 {
		return 100
	}

	elapsed := PrematchWindow - remaining
	pct := int(elapsed * 100 / PrematchWindow)
	if pct < MinProgress {
		return MinProgress
	}
	if pct > 100 {
		return 100
	}
	return pct
}
