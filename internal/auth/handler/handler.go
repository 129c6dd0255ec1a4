// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/auth/service"
	"github.com/ashevelyov/matchboard/internal/middleware"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidEmail):
			errorResponse(c, "INVALID_REQUEST", "email address is malformed", http.StatusBadRequest)
		case errors.Is(err, model.ErrWeakPassword):
			errorResponse(c, "INVALID_REQUEST", "password must be at least 8 characters", http.StatusBadRequest)
		case errors.Is(err, model.ErrUserExists):
			errorResponse(c, "USER_EXISTS", "email is already registered", http.StatusConflict)
		default:
			h.logger.Errorw("error registering user", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "email and password are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			errorResponse(c, "INVALID_CREDENTIALS", "wrong email or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me. The route is registered behind RequireAuth,
// so the claims are already on the context.
func (h *Handler) Me(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		errorResponse(c, "UNAUTHORIZED", "missing bearer token", http.StatusUnauthorized)
		return
	}

	user, err := h.service.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			errorResponse(c, "USER_NOT_FOUND", "account no longer exists", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error loading account", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, user)
}
