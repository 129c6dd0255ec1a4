// Package repository provides data access layer for the match module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// List returns all matches ordered by date and start time.
	List(ctx context.Context) ([]model.Match, error)

	// GetByID finds a match by id.
	GetByID(ctx context.Context, id string) (*model.Match, error)

	// Create inserts a new match.
	Create(ctx context.Context, match *model.Match) error

	// Update replaces an existing match record.
	Update(ctx context.Context, match *model.Match) error

	// Delete removes a match by id.
	Delete(ctx context.Context, id string) error

	// SetLive flags one match live and demotes every other live match
	// back to scheduled, in a single transaction.
	SetLive(ctx context.Context, id string) (*model.Match, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all matches ordered by date and start time.
func (r *repository) List(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	if matches == nil {
		return []model.Match{}, nil
	}
	return matches, nil
}

// GetByID finds a match by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&match).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	return &match, nil
}

// Create inserts a new match.
func (r *repository) Create(ctx context.Context, match *model.Match) error {
	now := time.Now()
	match.CreatedAt = now
	match.UpdatedAt = now
	return r.db.WithContext(ctx).Create(match).Error
}

// Update replaces an existing match record.
func (r *repository) Update(ctx context.Context, match *model.Match) error {
	// Select("*") writes zero-valued fields too, so clearing the venue or
	// stream URL sticks.
	res := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ?", match.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(match)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// Delete removes a match by id.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Match{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// SetLive flags one match live and demotes every other live match back to
// scheduled. Both writes happen in one transaction so at most one match is
// ever stored live.
func (r *repository) SetLive(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&match).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrMatchNotFound
			}
			return err
		}

		err := tx.Model(&model.Match{}).
			Where("status = ? AND id <> ?", lifecycle.StatusLive, id).
			Updates(map[string]interface{}{
				"status":     lifecycle.StatusScheduled,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&model.Match{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     lifecycle.StatusLive,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}

		match.Status = lifecycle.StatusLive
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &match, nil
}
