package postgres

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(&notification).Error
	return notification, err
}

// CreateBatch writes a whole fan-out in one transaction; a failure
// anywhere rolls back every row (no partial broadcast).
func (s *NotificationStorage) CreateBatch(ctx context.Context, notifications []entity.Notification) ([]entity.Notification, error) {
	if len(notifications) == 0 {
		return notifications, nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&notifications).Error
	})
	return notifications, err
}

func (s *NotificationStorage) Get(ctx context.Context, id int64) (*entity.Notification, error) {
	var notification entity.Notification
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	return &notification, err
}

func (s *NotificationStorage) GetByUserID(ctx context.Context, userID int64, origin entity.NotificationOrigin, onlyUnread bool) ([]entity.Notification, error) {
	var notifications []entity.Notification
	q := s.db.WithContext(ctx).Where("user_id = ? AND origin = ?", userID, origin)
	if onlyUnread {
		q = q.Where("is_read = ?", false)
	}
	err := q.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (s *NotificationStorage) Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Save(&notification).Error
	return notification, err
}

func (s *NotificationStorage) MarkAllRead(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
