// Package handlers is the HTTP boundary: route registration, request
// decoding, and the single place errors become status codes.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"userhub/api/internal/config"
	"userhub/api/internal/middleware"
	"userhub/api/internal/repository"
	"userhub/api/internal/service"
	"userhub/api/internal/session"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	db       *pgxpool.Pool
	users    *service.UserService
	auth     *service.AuthService
	audit    *service.LogService
	sessions *session.Manager
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)
	sessions := session.NewManager(cfg.Security.SecretKey, cfg.Security.SessionTTL)

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		db:       db,
		users:    service.NewUserService(userRepo, log),
		auth:     service.NewAuthService(userRepo, log),
		audit:    service.NewLogService(logRepo),
		sessions: sessions,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	v1.Use(middleware.Audit(h.sessions, h.audit, h.log))

	auth := v1.Group("/auth")
	auth.POST("/login", h.Login)
	auth.DELETE("/logout", h.Logout)

	users := v1.Group("/users")
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.POST("", h.RegisterUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}
