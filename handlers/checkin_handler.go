package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/config"
	"github.com/thsdbgh/jinhak2025-backend/models"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

type CheckinHandler struct {
	store storage.Store
	mode  string
}

func NewCheckinHandler(store storage.Store, mode string) *CheckinHandler {
	return &CheckinHandler{store: store, mode: mode}
}

// POST /checkin — body {"student_id": "..."}.
//
// update mode: flips checked_in on the matching attendee row, 404 when the
// student never registered. insert mode: appends a checkins row and always
// succeeds; two concurrent check-ins for the same id both land.
func (h *CheckinHandler) Checkin(c echo.Context) error {
	var req struct {
		StudentID string `json:"student_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": "invalid payload"})
	}
	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": "student_id is required"})
	}

	if h.mode == config.CheckinInsert {
		ci := models.Checkin{StudentID: studentID, CheckedInAt: time.Now()}
		if err := h.store.InsertCheckin(&ci); err != nil {
			return storageError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	}

	if err := h.store.MarkCheckedIn(studentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"status": "error", "message": "attendee not found"})
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "message": "checked in"})
}
