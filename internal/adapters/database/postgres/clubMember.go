package postgres

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubMemberStorage struct {
	db *gorm.DB
}

func NewClubMemberStorage(db *gorm.DB) *ClubMemberStorage {
	return &ClubMemberStorage{
		db: db,
	}
}

func (s *ClubMemberStorage) Create(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error) {
	err := s.db.WithContext(ctx).Create(&member).Error
	return member, err
}

func (s *ClubMemberStorage) Get(ctx context.Context, clubID, userID int64) (*entity.ClubMember, error) {
	var member entity.ClubMember
	err := s.db.WithContext(ctx).Where("club_id = ? AND user_id = ?", clubID, userID).First(&member).Error
	return &member, err
}

func (s *ClubMemberStorage) GetByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error) {
	var members []entity.ClubMember
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Find(&members).Error
	return members, err
}

// GetActiveByClubID returns the canonical roster for billing and
// broadcast: active memberships only, left members excluded.
func (s *ClubMemberStorage) GetActiveByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error) {
	var members []entity.ClubMember
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND status = ?", clubID, entity.MemberActive).
		Find(&members).Error
	return members, err
}

func (s *ClubMemberStorage) GetByUserID(ctx context.Context, userID int64, status entity.MemberStatus) ([]entity.ClubMember, error) {
	var members []entity.ClubMember
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&members).Error
	return members, err
}

func (s *ClubMemberStorage) Update(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error) {
	err := s.db.WithContext(ctx).Save(&member).Error
	return member, err
}
