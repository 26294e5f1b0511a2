package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/models"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

type AttendeeHandler struct {
	store storage.Store
}

func NewAttendeeHandler(store storage.Store) *AttendeeHandler {
	return &AttendeeHandler{store: store}
}

type attendeePayload struct {
	Name           string `json:"name" validate:"required"`
	Grade          string `json:"grade" validate:"required"`
	Class          string `json:"class" validate:"required"`
	Number         string `json:"number" validate:"required"`
	StudentPhone   string `json:"student_phone"`
	ParentPhone    string `json:"parent_phone" validate:"required"`
	AttendanceType string `json:"attendance_type" validate:"required"`
	ExtraNotes     string `json:"extra_notes"`
	StudentID      string `json:"student_id"`
}

func (p *attendeePayload) normalize() {
	trim := strings.TrimSpace
	p.Name = trim(p.Name)
	p.Grade = trim(p.Grade)
	p.Class = trim(p.Class)
	p.Number = trim(p.Number)
	p.StudentPhone = trim(p.StudentPhone)
	p.ParentPhone = trim(p.ParentPhone)
	p.AttendanceType = trim(p.AttendanceType)
	p.ExtraNotes = trim(p.ExtraNotes)
	p.StudentID = trim(p.StudentID)
}

// POST /attendees
// required: name, grade, class, number, parent_phone, attendance_type
// optional: student_phone, extra_notes, student_id
func (h *AttendeeHandler) Create(c echo.Context) error {
	var p attendeePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": "invalid payload"})
	}
	// Required-field check runs on a trimmed copy; the row itself keeps the
	// submitted values verbatim, whitespace included.
	v := p
	v.normalize()
	if err := validate.Struct(&v); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "message": requiredFieldMessage(err)})
	}

	a := models.Attendee{
		Name:           p.Name,
		Grade:          p.Grade,
		Class:          p.Class,
		Number:         p.Number,
		StudentPhone:   p.StudentPhone,
		ParentPhone:    p.ParentPhone,
		AttendanceType: p.AttendanceType,
		ExtraNotes:     p.ExtraNotes,
		StudentID:      p.StudentID,
	}
	if err := h.store.InsertAttendee(&a); err != nil {
		return storageError(c, err)
	}

	// The REST backend inserts with minimal returning, so no id there.
	if a.ID != 0 {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "id": a.ID})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// GET /admin/attendees?q=&page=&size=
func (h *AttendeeHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}

	items, total, err := h.store.ListAttendees(q, page, size)
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}
