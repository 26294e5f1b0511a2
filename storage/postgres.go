package storage

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thsdbgh/jinhak2025-backend/models"
)

// gormStore talks straight to Postgres. Used in production where the database
// port is reachable.
type gormStore struct {
	db *gorm.DB
}

// OpenPostgres connects and migrates the schema. If the DB is down the caller
// gets the error immediately — early fail at boot, not per request.
func OpenPostgres(dsn string) (Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.Attendee{},
		&models.Notice{},
		&models.Checkin{},
		&models.Staff{},
	); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) InsertAttendee(a *models.Attendee) error {
	return s.db.Create(a).Error
}

func (s *gormStore) ListAttendees(q string, page, size int) ([]models.Attendee, int64, error) {
	tx := s.db.Model(&models.Attendee{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(student_id) LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Attendee
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *gormStore) MarkCheckedIn(studentID string) error {
	res := s.db.Model(&models.Attendee{}).
		Where("student_id = ?", studentID).
		Update("checked_in", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) InsertCheckin(ci *models.Checkin) error {
	return s.db.Create(ci).Error
}

func (s *gormStore) ListNotices() ([]models.Notice, error) {
	var rows []models.Notice
	if err := s.db.Order("pinned DESC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) InsertNotice(n *models.Notice) error {
	return s.db.Create(n).Error
}

func (s *gormStore) FindStaffByUsername(username string) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.Where("username = ?", username).First(&st).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (s *gormStore) Ping() (int64, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return 0, err
	}
	return 0, sqlDB.Ping()
}

func (s *gormStore) Mode() string { return ModePostgres }
