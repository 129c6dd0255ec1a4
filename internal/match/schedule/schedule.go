// Package schedule buckets matches across a fixed window of the next
// seven calendar days. The window is computed once from a supplied
// instant and stays stable even as time passes, so day tabs do not shift
// mid-session.
package schedule

import (
	"time"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

// WindowDays is the number of calendar days in a schedule window.
const WindowDays = 7

// Window is a fixed run of consecutive local calendar days, day 0 = the
// day it was computed on.
type Window struct {
	days [WindowDays]time.Time
}

// NewWindow computes the 7-day window anchored on now's local calendar day.
func NewWindow(now time.Time) Window {
	var w Window
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := range w.days {
		w.days[i] = today.AddDate(0, 0, i)
	}
	return w
}

// Day returns the calendar day at index i. Callers must pass a valid index.
func (w Window) Day(i int) time.Time {
	return w.days[i]
}

// ValidDay reports whether i addresses a day inside the window.
func (w Window) ValidDay(i int) bool {
	return i >= 0 && i < WindowDays
}

// Days returns the window's dates formatted as YYYY-MM-DD, for tab labels.
func (w Window) Days() []string {
	out := make([]string, WindowDays)
	for i, d := range w.days {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

// Filter returns the matches whose date falls on the selected day.
// Day identity compares calendar year/month/day only. A match whose date
// does not parse is excluded from every bucket rather than failing the
// listing. Matches outside the window match no day index.
func (w Window) Filter(matches []model.Match, day int) []model.Match {
	if !w.ValidDay(day) {
		return []model.Match{}
	}

	target := w.days[day]
	out := []model.Match{}
	for _, m := range matches {
		d, err := lifecycle.ParseDate(m.Date)
		if err != nil {
			continue
		}
		if sameDay(d, target) {
			out = append(out, m)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
