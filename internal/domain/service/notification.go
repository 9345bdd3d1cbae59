package service

import (
	"context"
	"fmt"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/google/uuid"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	CreateBatch(ctx context.Context, notifications []entity.Notification) ([]entity.Notification, error)
	Get(ctx context.Context, id int64) (*entity.Notification, error)
	GetByUserID(ctx context.Context, userID int64, origin entity.NotificationOrigin, onlyUnread bool) ([]entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type notificationClubStorage interface {
	Get(ctx context.Context, id int64) (*entity.Club, error)
}

type notificationMemberStorage interface {
	GetActiveByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error)
}

type NotificationService struct {
	storage       NotificationStorage
	clubStorage   notificationClubStorage
	memberStorage notificationMemberStorage
}

func NewNotificationService(storage NotificationStorage, clubStorage notificationClubStorage, memberStorage notificationMemberStorage) *NotificationService {
	return &NotificationService{
		storage:       storage,
		clubStorage:   clubStorage,
		memberStorage: memberStorage,
	}
}

// BroadcastToClub writes one recipient row per active member plus one
// audit row for the issuing admin, all in a single transaction. The
// roster is an unlocked snapshot, same accepted race as fee-cycle
// creation. An empty roster is a successful no-op with zero rows.
func (s *NotificationService) BroadcastToClub(ctx context.Context, input dto.ClubNotice, requesterID int64) (*dto.BroadcastResult, error) {
	club, err := s.clubStorage.Get(ctx, input.ClubID)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, errorz.Forbidden
	}

	members, err := s.memberStorage.GetActiveByClubID(ctx, input.ClubID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return &dto.BroadcastResult{Recipients: 0}, nil
	}

	batchID := uuid.New().String()
	message := fmt.Sprintf("%s: %s", input.Title, input.Message)

	notifications := make([]entity.Notification, 0, len(members)+1)
	for _, member := range members {
		notifications = append(notifications, entity.Notification{
			UserID:  member.UserID,
			Type:    entity.NotificationClubNotice,
			Message: message,
			Origin:  entity.OriginRecipient,
			BatchID: batchID,
		})
	}
	notifications = append(notifications, entity.Notification{
		UserID:  requesterID,
		Type:    entity.NotificationClubNotice,
		Message: message,
		Origin:  entity.OriginAudit,
		BatchID: batchID,
	})

	if _, err = s.storage.CreateBatch(ctx, notifications); err != nil {
		return nil, err
	}

	return &dto.BroadcastResult{BatchID: batchID, Recipients: len(members)}, nil
}

func (s *NotificationService) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	if notification.Origin == "" {
		notification.Origin = entity.OriginRecipient
	}
	return s.storage.Create(ctx, notification)
}

// FindByUser returns the rows delivered to a user, newest first. Audit
// copies never show up here; they have their own listing.
func (s *NotificationService) FindByUser(ctx context.Context, userID int64, onlyUnread bool) ([]entity.Notification, error) {
	return s.storage.GetByUserID(ctx, userID, entity.OriginRecipient, onlyUnread)
}

// FindAudit returns the broadcast records of an issuing admin.
func (s *NotificationService) FindAudit(ctx context.Context, userID int64) ([]entity.Notification, error) {
	return s.storage.GetByUserID(ctx, userID, entity.OriginAudit, false)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) (*entity.Notification, error) {
	notification, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if notification.UserID != userID {
		return nil, errorz.Forbidden
	}
	notification.IsRead = true
	return s.storage.Update(ctx, notification)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.storage.MarkAllRead(ctx, userID)
}
