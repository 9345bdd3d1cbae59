package postgres

import (
	"context"
	"errors"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type MatchStorage struct {
	db *gorm.DB
}

func NewMatchStorage(db *gorm.DB) *MatchStorage {
	return &MatchStorage{
		db: db,
	}
}

// CreateWithNotifications inserts the match and its match_created
// fan-out rows together.
func (s *MatchStorage) CreateWithNotifications(ctx context.Context, match *entity.Match, notifications []entity.Notification) (*entity.Match, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		if len(notifications) > 0 {
			return tx.Create(&notifications).Error
		}
		return nil
	})
	return match, err
}

func (s *MatchStorage) Get(ctx context.Context, id int64) (*entity.Match, error) {
	var match entity.Match
	err := s.db.WithContext(ctx).Preload("Attendance").Where("id = ?", id).First(&match).Error
	return &match, err
}

func (s *MatchStorage) GetByClubID(ctx context.Context, clubID int64) ([]entity.Match, error) {
	var matches []entity.Match
	err := s.db.WithContext(ctx).Preload("Attendance").Where("club_id = ?", clubID).Order("match_date ASC").Find(&matches).Error
	return matches, err
}

func (s *MatchStorage) Update(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	err := s.db.WithContext(ctx).Save(&match).Error
	return match, err
}

func (s *MatchStorage) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&entity.MatchAttendance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Match{}).Error
	})
}

type MatchAttendanceStorage struct {
	db *gorm.DB
}

func NewMatchAttendanceStorage(db *gorm.DB) *MatchAttendanceStorage {
	return &MatchAttendanceStorage{
		db: db,
	}
}

// Set inserts the attendance row, absorbing a duplicate-key collision
// on (match_id, user_id) by updating the existing row instead. One row
// per pair, last write wins.
func (s *MatchAttendanceStorage) Set(ctx context.Context, attendance *entity.MatchAttendance) (*entity.MatchAttendance, error) {
	err := s.db.WithContext(ctx).Create(&attendance).Error
	if err == nil {
		return attendance, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	var existing entity.MatchAttendance
	if err = s.db.WithContext(ctx).
		Where("match_id = ? AND user_id = ?", attendance.MatchID, attendance.UserID).
		First(&existing).Error; err != nil {
		return nil, err
	}
	existing.Status = attendance.Status
	err = s.db.WithContext(ctx).Save(&existing).Error
	return &existing, err
}

func (s *MatchAttendanceStorage) GetByMatchID(ctx context.Context, matchID int64) ([]entity.MatchAttendance, error) {
	var attendance []entity.MatchAttendance
	err := s.db.WithContext(ctx).Where("match_id = ?", matchID).Find(&attendance).Error
	return attendance, err
}

func (s *MatchAttendanceStorage) GetByUserID(ctx context.Context, userID int64) ([]entity.MatchAttendance, error) {
	var attendance []entity.MatchAttendance
	err := s.db.WithContext(ctx).Preload("Match").Where("user_id = ?", userID).Find(&attendance).Error
	return attendance, err
}
