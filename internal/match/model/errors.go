package model

import "errors"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidMatchID indicates that the provided match ID is invalid (e.g., empty).
	ErrInvalidMatchID = errors.New("invalid match ID")
	// ErrInvalidDate indicates a date that does not split into YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid match date")
	// ErrInvalidStartTime indicates a start time that does not split into HH:MM.
	ErrInvalidStartTime = errors.New("invalid match start time")
	// ErrInvalidStatus indicates a status outside scheduled/live/completed.
	ErrInvalidStatus = errors.New("invalid match status")
	// ErrInvalidDay indicates a day index outside the 7-day schedule window.
	ErrInvalidDay = errors.New("invalid schedule day index")
)
