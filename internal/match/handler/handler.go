// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashevelyov/matchboard/internal/match/model"
	"github.com/ashevelyov/matchboard/internal/match/service"
)

// LivePublisher receives a match when it is flagged live, for fan-out to
// stream viewers.
type LivePublisher interface {
	PublishLive(match model.Match)
}

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	live    LivePublisher
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance. live may be nil when no
// fan-out is wired (e.g. in tests).
func New(svc service.Service, live LivePublisher, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, live: live, logger: logger}
}

// ListMatches handles GET /matches.
func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.service.ListMatches(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing matches", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /matches/:id.
func (h *Handler) GetMatch(c *gin.Context) {
	id := c.Param("id")

	match, err := h.service.GetMatch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		if errors.Is(err, model.ErrInvalidMatchID) {
			errorResponse(c, "INVALID_REQUEST", "match id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error getting match", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMatch handles POST /matches.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req model.UpsertMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		if code, msg, ok := validationError(err); ok {
			errorResponse(c, code, msg, http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating match", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateMatch handles PUT /matches/:id.
func (h *Handler) UpdateMatch(c *gin.Context) {
	id := c.Param("id")

	var req model.UpsertMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.service.UpdateMatch(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		if code, msg, ok := validationError(err); ok {
			errorResponse(c, code, msg, http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating match", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch handles DELETE /matches/:id.
func (h *Handler) DeleteMatch(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteMatch(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		if errors.Is(err, model.ErrInvalidMatchID) {
			errorResponse(c, "INVALID_REQUEST", "match id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error deleting match", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetLive handles POST /matches/:id/live.
func (h *Handler) SetLive(c *gin.Context) {
	id := c.Param("id")

	match, err := h.service.SetLive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			notFoundResponse(c, "match not found")
			return
		}
		if errors.Is(err, model.ErrInvalidMatchID) {
			errorResponse(c, "INVALID_REQUEST", "match id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error setting match live", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	if h.live != nil {
		h.live.PublishLive(*match)
	}

	c.JSON(http.StatusOK, match)
}

// Schedule handles GET /schedule?day=N.
func (h *Handler) Schedule(c *gin.Context) {
	day := 0
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "day must be an integer", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	resp, err := h.service.Schedule(c.Request.Context(), day, time.Now())
	if err != nil {
		if errors.Is(err, model.ErrInvalidDay) {
			errorResponse(c, "INVALID_REQUEST", "day must be between 0 and 6", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error building schedule", "day", day, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// validationError maps service validation errors to response codes.
func validationError(err error) (code, message string, ok bool) {
	switch {
	case errors.Is(err, model.ErrInvalidDate):
		return "INVALID_REQUEST", "date must be YYYY-MM-DD", true
	case errors.Is(err, model.ErrInvalidStartTime):
		return "INVALID_REQUEST", "startTime must be HH:MM", true
	case errors.Is(err, model.ErrInvalidStatus):
		return "INVALID_REQUEST", "status must be scheduled, live or completed", true
	case errors.Is(err, model.ErrInvalidMatchID):
		return "INVALID_REQUEST", "match id is required", true
	}
	return "", "", false
}
