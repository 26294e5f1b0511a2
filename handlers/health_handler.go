package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/storage"
)

type HealthHandler struct {
	store storage.Store
}

func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// GET /
func (h *HealthHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": "jinhak2025-backend",
	})
}

// GET /health/db — one trivial query, never mutates.
func (h *HealthHandler) DB(c echo.Context) error {
	rows, err := h.store.Ping()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"db": "error", "detail": err.Error()})
	}
	resp := map[string]any{"db": "ok", "mode": h.store.Mode()}
	if h.store.Mode() == storage.ModePostgrest {
		resp["rows"] = rows
	}
	return c.JSON(http.StatusOK, resp)
}
