package postgres

import (
	"context"
	"errors"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type JoinRequestStorage struct {
	db *gorm.DB
}

func NewJoinRequestStorage(db *gorm.DB) *JoinRequestStorage {
	return &JoinRequestStorage{
		db: db,
	}
}

// Create inserts the request and the admin's join_request notification
// together.
func (s *JoinRequestStorage) Create(ctx context.Context, request *entity.JoinRequest, notification *entity.Notification) (*entity.JoinRequest, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
	return request, err
}

func (s *JoinRequestStorage) Get(ctx context.Context, id int64) (*entity.JoinRequest, error) {
	var request entity.JoinRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	return &request, err
}

func (s *JoinRequestStorage) GetPending(ctx context.Context, clubID, userID int64) (*entity.JoinRequest, error) {
	var request entity.JoinRequest
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ? AND status = ?", clubID, userID, entity.JoinPending).
		First(&request).Error
	return &request, err
}

func (s *JoinRequestStorage) GetByClubID(ctx context.Context, clubID int64) ([]entity.JoinRequest, error) {
	var requests []entity.JoinRequest
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Find(&requests).Error
	return requests, err
}

func (s *JoinRequestStorage) GetByUserID(ctx context.Context, userID int64) ([]entity.JoinRequest, error) {
	var requests []entity.JoinRequest
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&requests).Error
	return requests, err
}

// Approve commits the approval as one unit: membership insert, request
// update, and the approval notification either all land or none do.
//
// A duplicate-key collision on the membership's (club_id, user_id)
// unique index means the user is already a member - typically the loser
// of a concurrent double-approval. That branch is deliberately absorbed
// as success rather than surfaced: the desired end state already exists.
// Every other membership insert failure aborts the transaction.
func (s *JoinRequestStorage) Approve(ctx context.Context, request *entity.JoinRequest, member *entity.ClubMember, notification *entity.Notification) (*entity.JoinRequest, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// already a member: idempotent no-op
		}
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
	return request, err
}

// Reject persists the status transition and the rejection notification;
// no membership side effect.
func (s *JoinRequestStorage) Reject(ctx context.Context, request *entity.JoinRequest, notification *entity.Notification) (*entity.JoinRequest, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
	return request, err
}
