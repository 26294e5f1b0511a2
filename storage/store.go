package storage

import (
	"errors"
	"fmt"

	"github.com/thsdbgh/jinhak2025-backend/config"
	"github.com/thsdbgh/jinhak2025-backend/models"
)

// Backend modes, reported by Store.Mode and in the health payload.
const (
	ModePostgres  = "postgres"
	ModePostgrest = "postgrest"
)

// ErrNotFound is returned when an update targets a row that does not exist.
var ErrNotFound = errors.New("not found")

// RESTError wraps failures from the PostgREST layer so handlers can map them
// to 400, the way the original service surfaced PostgREST API errors.
type RESTError struct {
	Err error
}

func (e *RESTError) Error() string { return e.Err.Error() }
func (e *RESTError) Unwrap() error { return e.Err }

// Store is the single storage abstraction: one interface, two interchangeable
// backends (direct Postgres / Supabase PostgREST) chosen at startup.
type Store interface {
	InsertAttendee(a *models.Attendee) error
	ListAttendees(q string, page, size int) ([]models.Attendee, int64, error)

	// MarkCheckedIn sets checked_in on the attendee row matched by student
	// id; ErrNotFound when no row matches (update-mode check-in).
	MarkCheckedIn(studentID string) error
	// InsertCheckin appends a check-in row (insert-mode check-in).
	InsertCheckin(ci *models.Checkin) error

	ListNotices() ([]models.Notice, error)
	InsertNotice(n *models.Notice) error

	FindStaffByUsername(username string) (*models.Staff, error)

	// Ping runs one trivial query. The REST backend also reports how many
	// rows the probe returned, which the health endpoint exposes.
	Ping() (int64, error)
	Mode() string
}

// Open selects the backend from config: DATABASE_URL wins, then
// SUPABASE_URL+SUPABASE_KEY. No target configured is a startup error.
func Open(cfg *config.Config) (Store, error) {
	if cfg.DatabaseURL != "" {
		return OpenPostgres(cfg.DatabaseURL)
	}
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		return OpenPostgrest(cfg.SupabaseURL, cfg.SupabaseKey), nil
	}
	return nil, fmt.Errorf("no DB config found: set DATABASE_URL or SUPABASE_URL/SUPABASE_KEY")
}
