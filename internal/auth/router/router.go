// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ashevelyov/matchboard/internal/auth/handler"
	"github.com/ashevelyov/matchboard/internal/auth/repository"
	"github.com/ashevelyov/matchboard/internal/auth/service"
	"github.com/ashevelyov/matchboard/internal/middleware"
)

// RegisterRoutes registers auth module routes and returns the service so
// the caller can wire the token guard middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg service.Config, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db)
	svc := service.New(repo, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", middleware.RequireAuth(svc), h.Me)

	return svc
}
