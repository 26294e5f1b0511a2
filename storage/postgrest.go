package storage

import (
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/thsdbgh/jinhak2025-backend/models"
)

// postgrestStore goes through the Supabase PostgREST API instead of a direct
// connection. Used in local development where port 5432 is often firewalled.
type postgrestStore struct {
	client *postgrest.Client
}

func OpenPostgrest(rawURL, key string) Store {
	url := strings.TrimRight(rawURL, "/") + "/rest/v1"
	client := postgrest.NewClient(url, "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	return &postgrestStore{client: client}
}

func restErr(err error) error {
	if err == nil {
		return nil
	}
	return &RESTError{Err: err}
}

// PostgREST logic-tree filters reserve these characters; strip them so a
// search term cannot break out of the or=() expression.
var filterTermStrip = strings.NewReplacer(
	",", "", ".", "", "(", "", ")", "", `"`, "", "\\", "", "*", "",
)

func sanitizeFilterTerm(q string) string {
	return filterTermStrip.Replace(q)
}

func (s *postgrestStore) InsertAttendee(a *models.Attendee) error {
	// Explicit field map: keeps the zero id out of the insert, and minimal
	// returning avoids the post-insert select (and its RLS select policy).
	row := map[string]any{
		"name":            a.Name,
		"grade":           a.Grade,
		"class":           a.Class,
		"number":          a.Number,
		"student_phone":   a.StudentPhone,
		"parent_phone":    a.ParentPhone,
		"attendance_type": a.AttendanceType,
		"extra_notes":     a.ExtraNotes,
		"student_id":      a.StudentID,
	}
	_, _, err := s.client.From("attendees").
		Insert(row, false, "", "minimal", "").
		Execute()
	return restErr(err)
}

func (s *postgrestStore) ListAttendees(q string, page, size int) ([]models.Attendee, int64, error) {
	fb := s.client.From("attendees").Select("*", "exact", false)
	if q = sanitizeFilterTerm(q); q != "" {
		fb = fb.Or(fmt.Sprintf("name.ilike.*%s*,student_id.ilike.*%s*", q, q), "")
	}
	from := (page - 1) * size
	var items []models.Attendee
	total, err := fb.
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Range(from, from+size-1, "").
		ExecuteTo(&items)
	if err != nil {
		return nil, 0, restErr(err)
	}
	return items, total, nil
}

func (s *postgrestStore) MarkCheckedIn(studentID string) error {
	var updated []models.Attendee
	_, err := s.client.From("attendees").
		Update(map[string]any{"checked_in": true}, "representation", "").
		Eq("student_id", studentID).
		ExecuteTo(&updated)
	if err != nil {
		return restErr(err)
	}
	if len(updated) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgrestStore) InsertCheckin(ci *models.Checkin) error {
	row := map[string]any{
		"student_id":    ci.StudentID,
		"checked_in_at": ci.CheckedInAt,
	}
	_, _, err := s.client.From("checkins").
		Insert(row, false, "", "minimal", "").
		Execute()
	return restErr(err)
}

func (s *postgrestStore) ListNotices() ([]models.Notice, error) {
	var rows []models.Notice
	_, err := s.client.From("notices").
		Select("*", "", false).
		Order("pinned", &postgrest.OrderOpts{Ascending: false}).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, restErr(err)
	}
	return rows, nil
}

func (s *postgrestStore) InsertNotice(n *models.Notice) error {
	row := map[string]any{
		"title":   n.Title,
		"content": n.Content,
		"pinned":  n.Pinned,
	}
	_, _, err := s.client.From("notices").
		Insert(row, false, "", "minimal", "").
		Execute()
	return restErr(err)
}

func (s *postgrestStore) FindStaffByUsername(username string) (*models.Staff, error) {
	var rows []models.Staff
	_, err := s.client.From("staffs").
		Select("*", "", false).
		Eq("username", username).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, restErr(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *postgrestStore) Ping() (int64, error) {
	// Same cheap reachability probe the original used: select one notice id.
	var rows []struct {
		ID int64 `json:"id"`
	}
	_, err := s.client.From("notices").
		Select("id", "", false).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return 0, restErr(err)
	}
	return int64(len(rows)), nil
}

func (s *postgrestStore) Mode() string { return ModePostgrest }
