package postgres

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type FeeRequestStorage struct {
	db *gorm.DB
}

func NewFeeRequestStorage(db *gorm.DB) *FeeRequestStorage {
	return &FeeRequestStorage{
		db: db,
	}
}

func (s *FeeRequestStorage) Get(ctx context.Context, id int64) (*entity.FeeRequest, error) {
	var request entity.FeeRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	return &request, err
}

func (s *FeeRequestStorage) GetByCycleID(ctx context.Context, cycleID int64) ([]entity.FeeRequest, error) {
	var requests []entity.FeeRequest
	err := s.db.WithContext(ctx).
		Where("fee_cycle_id = ?", cycleID).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (s *FeeRequestStorage) GetByUserAndClubs(ctx context.Context, userID int64, clubIDs []int64) ([]entity.FeeRequest, error) {
	var requests []entity.FeeRequest
	err := s.db.WithContext(ctx).
		Preload("FeeCycle").
		Where("user_id = ? AND club_id IN ?", userID, clubIDs).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (s *FeeRequestStorage) Update(ctx context.Context, request *entity.FeeRequest) (*entity.FeeRequest, error) {
	err := s.db.WithContext(ctx).Save(&request).Error
	return request, err
}
