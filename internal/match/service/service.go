// Package service provides business logic layer for the match module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
	"github.com/ashevelyov/matchboard/internal/match/repository"
	"github.com/ashevelyov/matchboard/internal/match/schedule"
)

// Service defines the interface for match business logic operations.
type Service interface {
	// ListMatches returns all matches.
	ListMatches(ctx context.Context) ([]model.Match, error)

	// GetMatch returns one match by id.
	GetMatch(ctx context.Context, id string) (*model.Match, error)

	// CreateMatch validates and stores a new match with a generated id.
	CreateMatch(ctx context.Context, req *model.UpsertMatchRequest) (*model.Match, error)

	// UpdateMatch validates and replaces an existing match.
	UpdateMatch(ctx context.Context, id string, req *model.UpsertMatchRequest) (*model.Match, error)

	// DeleteMatch removes a match.
	DeleteMatch(ctx context.Context, id string) error

	// SetLive flags a match live; any other live match is demoted.
	SetLive(ctx context.Context, id string) (*model.Match, error)

	// Schedule returns the selected day bucket of the 7-day window
	// anchored at now, with display state resolved per match.
	Schedule(ctx context.Context, day int, now time.Time) (*model.ScheduleResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new match service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// validate checks the fields shared by create and update.
func validate(req *model.UpsertMatchRequest) error {
	if _, err := lifecycle.ParseDate(req.Date); err != nil {
		return model.ErrInvalidDate
	}
	if _, err := lifecycle.ParseStart(req.Date, req.StartTime); err != nil {
		return model.ErrInvalidStartTime
	}
	if !req.Status.Valid() {
		return model.ErrInvalidStatus
	}
	return nil
}

// ListMatches returns all matches.
func (s *service) ListMatches(ctx context.Context) ([]model.Match, error) {
	return s.repo.List(ctx)
}

// GetMatch returns one match by id.
func (s *service) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	if id == "" {
		return nil, model.ErrInvalidMatchID
	}
	return s.repo.GetByID(ctx, id)
}

// CreateMatch validates and stores a new match with a generated id.
func (s *service) CreateMatch(ctx context.Context, req *model.UpsertMatchRequest) (*model.Match, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	match := req.ToMatch(uuid.NewString())
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Infow("match created", "match_id", match.ID, "date", match.Date)
	return match, nil
}

// UpdateMatch validates and replaces an existing match.
func (s *service) UpdateMatch(ctx context.Context, id string, req *model.UpsertMatchRequest) (*model.Match, error) {
	if id == "" {
		return nil, model.ErrInvalidMatchID
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	match := req.ToMatch(id)
	if err := s.repo.Update(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// DeleteMatch removes a match.
func (s *service) DeleteMatch(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrInvalidMatchID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("match deleted", "match_id", id)
	return nil
}

// SetLive flags a match live; any other live match is demoted.
func (s *service) SetLive(ctx context.Context, id string) (*model.Match, error) {
	if id == "" {
		return nil, model.ErrInvalidMatchID
	}

	match, err := s.repo.SetLive(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match set live", "match_id", id)
	return match, nil
}

// Schedule returns the selected day bucket with resolved display state.
func (s *service) Schedule(ctx context.Context, day int, now time.Time) (*model.ScheduleResponse, error) {
	window := schedule.NewWindow(now)
	if !window.ValidDay(day) {
		return nil, model.ErrInvalidDay
	}

	matches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	bucket := window.Filter(matches, day)
	entries := make([]model.ScheduleEntry, 0, len(bucket))
	for _, m := range bucket {
		start, err := m.StartInstant()
		if err != nil {
			// The date parsed (it passed the bucket filter) but the
			// start time did not; leave the card off the schedule.
			s.logger.Warnw("skipping match with bad start time",
				"match_id", m.ID, "start_time", m.StartTime)
			continue
		}

		snap := lifecycle.Resolve(m.Status, start, now)
		entries = append(entries, model.ScheduleEntry{
			Match:          m,
			DerivedState:   snap.State,
			CountdownLabel: snap.Label,
			RemainingMs:    snap.Remaining.Milliseconds(),
			Progress:       lifecycle.Progress(m.Status, start, now),
		})
	}

	return &model.ScheduleResponse{
		Day:     day,
		Date:    window.Days()[day],
		Days:    window.Days(),
		Matches: entries,
	}, nil
}
