package localstore

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

// Store is the offline match CRUD surface over the kv blob. Its methods
// mirror the REST client so a board can run against either backend.
type Store struct {
	kv *KV
}

// NewStore creates a match store over an opened kv blob.
func NewStore(kv *KV) *Store {
	return &Store{kv: kv}
}

// newID generates a short random base-36 id.
func newID() string {
	return strconv.FormatInt(rand.Int63n(1<<40), 36)
}

func (s *Store) load() []model.Match {
	var matches []model.Match
	if !s.kv.Get(MatchesKey, &matches) || matches == nil {
		return []model.Match{}
	}
	return matches
}

func (s *Store) save(matches []model.Match) error {
	return s.kv.Put(MatchesKey, matches)
}

// ListMatches returns all stored matches.
func (s *Store) ListMatches(ctx context.Context) ([]model.Match, error) {
	return s.load(), nil
}

// GetMatch returns one match by id.
func (s *Store) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	for _, m := range s.load() {
		if m.ID == id {
			match := m
			return &match, nil
		}
	}
	return nil, model.ErrMatchNotFound
}

// CreateMatch stores a new match under a generated id.
func (s *Store) CreateMatch(ctx context.Context, req *model.UpsertMatchRequest) (*model.Match, error) {
	match := req.ToMatch(newID())
	matches := append(s.load(), *match)
	if err := s.save(matches); err != nil {
		return nil, err
	}
	return match, nil
}

// UpdateMatch replaces the stored match with the given id.
func (s *Store) UpdateMatch(ctx context.Context, id string, req *model.UpsertMatchRequest) (*model.Match, error) {
	matches := s.load()
	for i, m := range matches {
		if m.ID == id {
			match := req.ToMatch(id)
			matches[i] = *match
			if err := s.save(matches); err != nil {
				return nil, err
			}
			return match, nil
		}
	}
	return nil, model.ErrMatchNotFound
}

// DeleteMatch removes the match with the given id.
func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	matches := s.load()
	for i, m := range matches {
		if m.ID == id {
			matches = append(matches[:i], matches[i+1:]...)
			return s.save(matches)
		}
	}
	return model.ErrMatchNotFound
}

// SetLive flags the match live and demotes any other live match, keeping
// the offline path's one-live convention.
func (s *Store) SetLive(ctx context.Context, id string) (*model.Match, error) {
	matches := s.load()
	var target *model.Match
	for i := range matches {
		switch {
		case matches[i].ID == id:
			matches[i].Status = lifecycle.StatusLive
			target = &matches[i]
		case matches[i].Status == lifecycle.StatusLive:
			matches[i].Status = lifecycle.StatusScheduled
		}
	}
	if target == nil {
		return nil, model.ErrMatchNotFound
	}
	if err := s.save(matches); err != nil {
		return nil, err
	}
	match := *target
	return &match, nil
}
