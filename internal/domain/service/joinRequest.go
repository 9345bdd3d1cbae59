package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type JoinRequestStorage interface {
	Create(ctx context.Context, request *entity.JoinRequest, notification *entity.Notification) (*entity.JoinRequest, error)
	Get(ctx context.Context, id int64) (*entity.JoinRequest, error)
	GetPending(ctx context.Context, clubID, userID int64) (*entity.JoinRequest, error)
	GetByClubID(ctx context.Context, clubID int64) ([]entity.JoinRequest, error)
	GetByUserID(ctx context.Context, userID int64) ([]entity.JoinRequest, error)
	Approve(ctx context.Context, request *entity.JoinRequest, member *entity.ClubMember, notification *entity.Notification) (*entity.JoinRequest, error)
	Reject(ctx context.Context, request *entity.JoinRequest, notification *entity.Notification) (*entity.JoinRequest, error)
}

type joinRequestClubStorage interface {
	Get(ctx context.Context, id int64) (*entity.Club, error)
}

type joinRequestUserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

type JoinRequestService struct {
	storage     JoinRequestStorage
	clubStorage joinRequestClubStorage
	userStorage joinRequestUserStorage
}

func NewJoinRequestService(storage JoinRequestStorage, clubStorage joinRequestClubStorage, userStorage joinRequestUserStorage) *JoinRequestService {
	return &JoinRequestService{
		storage:     storage,
		clubStorage: clubStorage,
		userStorage: userStorage,
	}
}

// Create opens a pending request and notifies the club admin in the
// same transaction. A second pending request for the same pair is a
// Conflict.
func (s *JoinRequestService) Create(ctx context.Context, clubID, userID int64) (*entity.JoinRequest, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, storageError(err)
	}
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}

	if _, err = s.storage.GetPending(ctx, clubID, userID); err == nil {
		return nil, errorz.Conflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := entity.JoinRequest{
		ClubID:      clubID,
		UserID:      userID,
		Status:      entity.JoinPending,
		RequestedAt: time.Now(),
	}
	notification := entity.Notification{
		UserID:  club.AdminUserID,
		Type:    entity.NotificationJoinRequest,
		Message: fmt.Sprintf("%s asked to join %s", user.Name, club.Name),
		Origin:  entity.OriginRecipient,
	}
	return s.storage.Create(ctx, &request, &notification)
}

func (s *JoinRequestService) Get(ctx context.Context, id int64) (*entity.JoinRequest, error) {
	request, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return request, nil
}

func (s *JoinRequestService) GetByClubID(ctx context.Context, clubID int64) ([]entity.JoinRequest, error) {
	return s.storage.GetByClubID(ctx, clubID)
}

func (s *JoinRequestService) GetByUserID(ctx context.Context, userID int64) ([]entity.JoinRequest, error) {
	return s.storage.GetByUserID(ctx, userID)
}

// Approve turns a pending request into an active membership. The
// membership insert, the status flip and the approval notification
// commit together or not at all; a concurrent double-approval loses on
// the membership unique index and is absorbed inside the storage layer.
func (s *JoinRequestService) Approve(ctx context.Context, requestID, requesterID int64) (*entity.JoinRequest, error) {
	request, club, err := s.authorize(ctx, requestID, requesterID)
	if err != nil {
		return nil, err
	}

	if err = request.Transition(entity.JoinActionApprove, time.Now()); err != nil {
		return nil, err
	}

	member := entity.ClubMember{
		ClubID:   request.ClubID,
		UserID:   request.UserID,
		Role:     entity.RoleMember,
		Status:   entity.MemberActive,
		JoinedAt: time.Now(),
	}
	notification := entity.Notification{
		UserID:  request.UserID,
		Type:    entity.NotificationJoinApproved,
		Message: fmt.Sprintf("Your request to join %s was approved", club.Name),
		Origin:  entity.OriginRecipient,
	}
	return s.storage.Approve(ctx, request, &member, &notification)
}

// Reject is a pure status transition with no membership side effect.
// Rejecting an already-approved request is a Conflict: the transition
// table treats approved as terminal, so an approval can never be
// silently overwritten while the membership row survives.
func (s *JoinRequestService) Reject(ctx context.Context, requestID, requesterID int64) (*entity.JoinRequest, error) {
	request, club, err := s.authorize(ctx, requestID, requesterID)
	if err != nil {
		return nil, err
	}

	if err = request.Transition(entity.JoinActionReject, time.Now()); err != nil {
		return nil, err
	}

	notification := entity.Notification{
		UserID:  request.UserID,
		Type:    entity.NotificationJoinRejected,
		Message: fmt.Sprintf("Your request to join %s was rejected", club.Name),
		Origin:  entity.OriginRecipient,
	}
	return s.storage.Reject(ctx, request, &notification)
}

func (s *JoinRequestService) authorize(ctx context.Context, requestID, requesterID int64) (*entity.JoinRequest, *entity.Club, error) {
	request, err := s.storage.Get(ctx, requestID)
	if err != nil {
		return nil, nil, storageError(err)
	}
	club, err := s.clubStorage.Get(ctx, request.ClubID)
	if err != nil {
		return nil, nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, nil, errorz.Forbidden
	}
	return request, club, nil
}
