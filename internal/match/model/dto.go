package model

import "github.com/ashevelyov/matchboard/internal/match/lifecycle"

// UpsertMatchRequest represents the body of match create and update calls.
// Create generates the id server-side; update takes it from the path.
type UpsertMatchRequest struct {
	Date      string           `json:"date"      binding:"required"`
	StartTime string           `json:"startTime" binding:"required"`
	HomeTeam  Team             `json:"homeTeam"`
	AwayTeam  Team             `json:"awayTeam"`
	Venue     string           `json:"venue"`
	StreamURL string           `json:"streamUrl"`
	Status    lifecycle.Status `json:"status"`
}

// ToMatch builds a Match from the request, with defaults applied.
func (r *UpsertMatchRequest) ToMatch(id string) *Match {
	m := &Match{
		ID:        id,
		Date:      r.Date,
		StartTime: r.StartTime,
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		Venue:     r.Venue,
		StreamURL: r.StreamURL,
		Status:    r.Status,
	}
	m.ApplyDefaults()
	return m
}

// ScheduleEntry is one match of a day bucket with its display state
// resolved against the request's current time.
type ScheduleEntry struct {
	Match          Match                  `json:"match"`
	DerivedState   lifecycle.DerivedState `json:"derivedState"`
	CountdownLabel string                 `json:"countdownLabel"`
	RemainingMs    int64                  `json:"remainingMs"`
	Progress       int                    `json:"progress"`
}

// ScheduleResponse is the payload of the day-bucketed schedule endpoint.
type ScheduleResponse struct {
	Day     int             `json:"day"`
	Date    string          `json:"date"`
	Days    []string        `json:"days"`
	Matches []ScheduleEntry `json:"matches"`
}
