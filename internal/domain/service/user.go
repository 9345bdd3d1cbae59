package service

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetAll(ctx)
}

func (s *UserService) UpdateOnboardingType(ctx context.Context, userID int64, onboardingType entity.OnboardingType) (*entity.User, error) {
	if !onboardingType.Valid() {
		return nil, errorz.Validation
	}
	user, err := s.storage.Get(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}
	user.OnboardingType = onboardingType
	return s.storage.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.storage.Get(ctx, id); err != nil {
		return storageError(err)
	}
	return s.storage.Delete(ctx, id)
}
