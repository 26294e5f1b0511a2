package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thsdbgh/jinhak2025-backend/config"
	"github.com/thsdbgh/jinhak2025-backend/routes"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

func main() {
	cfg := config.Load()

	// No DB target configured, or DB unreachable → fail at boot.
	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	// Wildcard CORS; tighten origins after the frontend domain is fixed.
	e.Use(middleware.CORS())

	routes.Register(e, cfg, store)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s (db mode: %s, checkin mode: %s)", addr, store.Mode(), cfg.CheckinMode)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
