// Package model provides domain models and DTOs for the match module.
package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
)

// Default display colors per side, used when a team record carries none.
const (
	DefaultHomeColor = "#1d4ed8"
	DefaultAwayColor = "#b91c1c"
)

// Team identifies one side of a match. Short is an abbreviation, by
// convention at most three characters, not enforced.
type Team struct {
	Name  string `gorm:"type:varchar(255)"  json:"name"`
	Short string `gorm:"type:varchar(16)"   json:"short"`
	Color string `gorm:"type:varchar(32)"   json:"color,omitempty"`
}

// Match represents a scheduled league match.
// Matches the matches table schema. Date and StartTime are stored as the
// wall-clock strings the schedule is published in; they carry no zone.
type Match struct {
	ID        string           `gorm:"primaryKey;column:id;type:varchar(64)"              json:"id"`
	Date      string           `gorm:"column:date;type:varchar(10);not null;index"        json:"date"`
	StartTime string           `gorm:"column:start_time;type:varchar(5);not null"         json:"startTime"`
	HomeTeam  Team             `gorm:"embedded;embeddedPrefix:home_"                      json:"homeTeam"`
	AwayTeam  Team             `gorm:"embedded;embeddedPrefix:away_"                      json:"awayTeam"`
	Venue     string           `gorm:"column:venue;type:varchar(255)"                     json:"venue,omitempty"`
	StreamURL string           `gorm:"column:stream_url;type:varchar(512)"                json:"streamUrl,omitempty"`
	Status    lifecycle.Status `gorm:"column:status;type:varchar(16);not null;default:scheduled" json:"status"`
	CreatedAt time.Time        `gorm:"column:created_at;not null"                         json:"-"`
	UpdatedAt time.Time        `gorm:"column:updated_at;not null"                         json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// StartInstant parses the match's date and start time as a local instant.
func (m *Match) StartInstant() (time.Time, error) {
	return lifecycle.ParseStart(m.Date, m.StartTime)
}

// ApplyDefaults fills the status and per-side team colors when absent.
func (m *Match) ApplyDefaults() {
	m.Status = m.Status.Normalize()
	if m.HomeTeam.Color == "" {
		m.HomeTeam.Color = DefaultHomeColor
	}
	if m.AwayTeam.Color == "" {
		m.AwayTeam.Color = DefaultAwayColor
	}
}
