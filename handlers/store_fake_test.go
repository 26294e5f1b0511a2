package handlers

import (
	"github.com/thsdbgh/jinhak2025-backend/models"
	"github.com/thsdbgh/jinhak2025-backend/storage"
)

// fakeStore is an in-memory storage.Store for handler tests.
type fakeStore struct {
	attendees []models.Attendee
	notices   []models.Notice
	checkins  []models.Checkin
	staff     map[string]models.Staff

	nextID uint
	mode   string

	insertErr error
	listErr   error
	pingErr   error
	pingRows  int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{staff: map[string]models.Staff{}, mode: "fake"}
}

func (f *fakeStore) InsertAttendee(a *models.Attendee) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	a.ID = f.nextID
	f.attendees = append(f.attendees, *a)
	return nil
}

func (f *fakeStore) ListAttendees(q string, page, size int) ([]models.Attendee, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.attendees, int64(len(f.attendees)), nil
}

func (f *fakeStore) MarkCheckedIn(studentID string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range f.attendees {
		if f.attendees[i].StudentID == studentID {
			f.attendees[i].CheckedIn = true
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) InsertCheckin(ci *models.Checkin) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	ci.ID = f.nextID
	f.checkins = append(f.checkins, *ci)
	return nil
}

func (f *fakeStore) ListNotices() ([]models.Notice, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.notices, nil
}

func (f *fakeStore) InsertNotice(n *models.Notice) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	n.ID = f.nextID
	f.notices = append(f.notices, *n)
	return nil
}

func (f *fakeStore) FindStaffByUsername(username string) (*models.Staff, error) {
	st, ok := f.staff[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &st, nil
}

func (f *fakeStore) Ping() (int64, error) { return f.pingRows, f.pingErr }
func (f *fakeStore) Mode() string         { return f.mode }
