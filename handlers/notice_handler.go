package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/models"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

type NoticeHandler struct {
	store storage.Store
}

func NewNoticeHandler(store storage.Store) *NoticeHandler {
	return &NoticeHandler{store: store}
}

// GET /notices — pinned first, then newest first. Bare array, as the frontend
// expects.
func (h *NoticeHandler) List(c echo.Context) error {
	rows, err := h.store.ListNotices()
	if err != nil {
		return storageError(c, err)
	}
	if rows == nil {
		rows = []models.Notice{}
	}
	return c.JSON(http.StatusOK, rows)
}

type noticePayload struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Pinned  bool   `json:"pinned"`
}

// POST /admin/notices
func (h *NoticeHandler) Create(c echo.Context) error {
	var p noticePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": "invalid payload"})
	}
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": requiredFieldMessage(err)})
	}

	n := models.Notice{Title: p.Title, Content: p.Content, Pinned: p.Pinned}
	if err := h.store.InsertNotice(&n); err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}
