package postgres

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type FeeCycleStorage struct {
	db *gorm.DB
}

func NewFeeCycleStorage(db *gorm.DB) *FeeCycleStorage {
	return &FeeCycleStorage{
		db: db,
	}
}

// CreateWithRequests inserts the cycle and one fee request per roster
// member in a single transaction. Any failure rolls back the cycle and
// every partial request insert - a cycle never bills part of a roster.
func (s *FeeCycleStorage) CreateWithRequests(ctx context.Context, cycle *entity.FeeCycle, requests []entity.FeeRequest) (*entity.FeeCycle, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cycle).Error; err != nil {
			return err
		}
		for i := range requests {
			requests[i].FeeCycleID = cycle.ID
		}
		if len(requests) > 0 {
			if err := tx.Create(&requests).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cycle.FeeRequests = requests
	return cycle, nil
}

func (s *FeeCycleStorage) Get(ctx context.Context, id int64) (*entity.FeeCycle, error) {
	var cycle entity.FeeCycle
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&cycle).Error
	return &cycle, err
}

func (s *FeeCycleStorage) GetWithRequests(ctx context.Context, id int64) (*entity.FeeCycle, error) {
	var cycle entity.FeeCycle
	err := s.db.WithContext(ctx).Preload("FeeRequests").Where("id = ?", id).First(&cycle).Error
	return &cycle, err
}

func (s *FeeCycleStorage) GetByClubID(ctx context.Context, clubID int64) ([]entity.FeeCycle, error) {
	var cycles []entity.FeeCycle
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at DESC").Find(&cycles).Error
	return cycles, err
}

func (s *FeeCycleStorage) Update(ctx context.Context, cycle *entity.FeeCycle) (*entity.FeeCycle, error) {
	err := s.db.WithContext(ctx).Save(&cycle).Error
	return cycle, err
}
