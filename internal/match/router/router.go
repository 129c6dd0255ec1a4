// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ashevelyov/matchboard/internal/match/handler"
	"github.com/ashevelyov/matchboard/internal/match/repository"
	"github.com/ashevelyov/matchboard/internal/match/service"
)

// RegisterRoutes registers match module routes. Mutating routes are
// wrapped with adminGuard; reads stay public.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	live handler.LivePublisher,
	adminGuard gin.HandlerFunc,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, live, logger)

	r.GET("/matches", h.ListMatches)
	r.GET("/matches/:id", h.GetMatch)
	r.GET("/schedule", h.Schedule)

	admin := r.Group("/", adminGuard)
	admin.POST("/matches", h.CreateMatch)
	admin.PUT("/matches/:id", h.UpdateMatch)
	admin.DELETE("/matches/:id", h.DeleteMatch)
	admin.POST("/matches/:id/live", h.SetLive)
}
