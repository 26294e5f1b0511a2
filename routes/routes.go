package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/config"
	"github.com/thsdbgh/jinhak2025-backend/handlers"
	"github.com/thsdbgh/jinhak2025-backend/middlewares"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, store storage.Store) {
	health := handlers.NewHealthHandler(store)
	att := handlers.NewAttendeeHandler(store)
	chk := handlers.NewCheckinHandler(store, cfg.CheckinMode)
	nt := handlers.NewNoticeHandler(store)
	auth := handlers.NewAuthHandler(store, cfg.JWTSecret)

	// ===== Public =====
	e.GET("/", health.Home)
	e.GET("/health/db", health.DB)
	e.GET("/notices", nt.List)
	e.POST("/attendees", att.Create)
	e.POST("/checkin", chk.Checkin)

	e.POST("/admin/login", auth.AdminLogin)

	// ===== Admin =====
	admin := e.Group("/admin", middlewares.RequireAuth(cfg.JWTSecret), middlewares.RequireRole("admin"))
	admin.GET("/attendees", att.List)
	admin.POST("/notices", nt.Create)
}
