package service

import (
	"context"
	"errors"
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id int64) (*entity.Club, error)
	GetByAdminUserID(ctx context.Context, adminUserID int64) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id int64) error
}

type clubUserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

type ClubService struct {
	storage     ClubStorage
	userStorage clubUserStorage
}

func NewClubService(storage ClubStorage, userStorage clubUserStorage) *ClubService {
	return &ClubService{
		storage:     storage,
		userStorage: userStorage,
	}
}

// Create inserts the club with the requester as admin. A taken club
// name or an already-occupied admin slot is a Conflict, never absorbed:
// unlike membership races there is no "desired state already exists"
// reading for a second club with the same name.
func (s *ClubService) Create(ctx context.Context, input dto.CreateClub, requesterID int64) (*entity.Club, error) {
	if _, err := s.userStorage.Get(ctx, requesterID); err != nil {
		return nil, storageError(err)
	}

	club := entity.Club{
		Name:         input.Name,
		WatermarkURL: input.WatermarkURL,
		Description:  input.Description,
		AdminUserID:  requesterID,
	}
	if input.FoundedAt != "" {
		foundedAt, err := time.Parse("2006-01-02", input.FoundedAt)
		if err != nil {
			return nil, errorz.Validation
		}
		club.FoundedAt = &foundedAt
	}

	created, err := s.storage.Create(ctx, &club)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.Conflict
		}
		return nil, err
	}
	return created, nil
}

func (s *ClubService) Get(ctx context.Context, id int64) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return club, nil
}

func (s *ClubService) GetAll(ctx context.Context) ([]entity.Club, error) {
	return s.storage.GetAll(ctx)
}

// GetByAdmin returns the club the user administers, if any.
func (s *ClubService) GetByAdmin(ctx context.Context, adminUserID int64) (*entity.Club, error) {
	club, err := s.storage.GetByAdminUserID(ctx, adminUserID)
	if err != nil {
		return nil, storageError(err)
	}
	return club, nil
}

func (s *ClubService) Update(ctx context.Context, id int64, input dto.UpdateClub, requesterID int64) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, errorz.Forbidden
	}

	if input.Name != "" {
		club.Name = input.Name
	}
	if input.WatermarkURL != "" {
		club.WatermarkURL = input.WatermarkURL
	}
	if input.Description != "" {
		club.Description = input.Description
	}
	if input.FoundedAt != "" {
		foundedAt, errParse := time.Parse("2006-01-02", input.FoundedAt)
		if errParse != nil {
			return nil, errorz.Validation
		}
		club.FoundedAt = &foundedAt
	}

	updated, err := s.storage.Update(ctx, club)
	if err != nil {
		return nil, storageError(err)
	}
	return updated, nil
}

func (s *ClubService) Delete(ctx context.Context, id int64, requesterID int64) error {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if club.AdminUserID != requesterID {
		return errorz.Forbidden
	}
	return s.storage.Delete(ctx, id)
}
