package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/storage"
)

func postJSON(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return out
}

const validAttendee = `{"name":"Kim","grade":"2","class":"3","number":"15","parent_phone":"010-1111-2222","attendance_type":"offline"}`

func TestCreateAttendeeMissingFields(t *testing.T) {
	required := []string{"name", "grade", "class", "number", "parent_phone", "attendance_type"}
	for _, field := range required {
		var full map[string]any
		if err := json.Unmarshal([]byte(validAttendee), &full); err != nil {
			t.Fatal(err)
		}
		delete(full, field)
		body, _ := json.Marshal(full)

		h := NewAttendeeHandler(newFakeStore())
		c, rec := postJSON(t, "/attendees", string(body))
		if err := h.Create(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("missing %s: status = %d, want 400", field, rec.Code)
		}
		got := decodeBody(t, rec)
		want := field + " is required"
		if got["message"] != want {
			t.Errorf("missing %s: message = %q, want %q", field, got["message"], want)
		}
	}
}

func TestCreateAttendeeEmptyFieldRejected(t *testing.T) {
	body := strings.Replace(validAttendee, `"Kim"`, `"  "`, 1)
	h := NewAttendeeHandler(newFakeStore())
	c, rec := postJSON(t, "/attendees", body)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec); got["message"] != "name is required" {
		t.Errorf("message = %q, want %q", got["message"], "name is required")
	}
}

func TestCreateAttendeeOK(t *testing.T) {
	store := newFakeStore()
	h := NewAttendeeHandler(store)
	c, rec := postJSON(t, "/attendees", validAttendee)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)
	if got["status"] != "ok" {
		t.Errorf("status field = %v, want ok", got["status"])
	}
	if got["id"] != float64(1) {
		t.Errorf("id = %v, want 1", got["id"])
	}
	if len(store.attendees) != 1 {
		t.Fatalf("stored %d attendees, want 1", len(store.attendees))
	}
	a := store.attendees[0]
	if a.Name != "Kim" || a.Grade != "2" || a.Class != "3" || a.Number != "15" ||
		a.ParentPhone != "010-1111-2222" || a.AttendanceType != "offline" {
		t.Errorf("stored fields not preserved: %+v", a)
	}
}

func TestCreateAttendeePreservesWhitespace(t *testing.T) {
	store := newFakeStore()
	h := NewAttendeeHandler(store)
	body := `{"name":" Kim ","grade":"2","class":"3","number":"15","parent_phone":"010-1111-2222","attendance_type":"offline","extra_notes":"note  "}`
	c, rec := postJSON(t, "/attendees", body)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	a := store.attendees[0]
	if a.Name != " Kim " {
		t.Errorf("name stored %q, submitted %q", a.Name, " Kim ")
	}
	if a.ExtraNotes != "note  " {
		t.Errorf("extra_notes stored %q, submitted %q", a.ExtraNotes, "note  ")
	}
}

func TestCreateAttendeeStorageErrors(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("connection refused")
	h := NewAttendeeHandler(store)
	c, rec := postJSON(t, "/attendees", validAttendee)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("plain error: status = %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec); got["detail"] != "connection refused" {
		t.Errorf("detail = %q, want raw error message", got["detail"])
	}

	// PostgREST-layer failures map to 400, like the original.
	store.insertErr = &storage.RESTError{Err: errors.New("permission denied for table attendees")}
	c, rec = postJSON(t, "/attendees", validAttendee)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("rest error: status = %d, want 400", rec.Code)
	}
}

func TestListAttendeesPaginationClamp(t *testing.T) {
	h := NewAttendeeHandler(newFakeStore())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/attendees?page=0&size=9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatal(err)
	}
	got := decodeBody(t, rec)
	if got["page"] != float64(1) {
		t.Errorf("page = %v, want clamped to 1", got["page"])
	}
	if got["size"] != float64(100) {
		t.Errorf("size = %v, want clamped to 100", got["size"])
	}
}
