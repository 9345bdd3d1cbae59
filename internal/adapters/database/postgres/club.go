package postgres

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

// Create inserts the club together with the admin's own active
// membership so a club never exists without its admin on the roster.
func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&club).Error; err != nil {
			return err
		}
		admin := entity.ClubMember{
			ClubID: club.ID,
			UserID: club.AdminUserID,
			Role:   entity.RoleAdmin,
			Status: entity.MemberActive,
		}
		return tx.Create(&admin).Error
	})
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id int64) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetByAdminUserID(ctx context.Context, adminUserID int64) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("admin_user_id = ?", adminUserID).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetAll(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Find(&clubs).Error
	return clubs, err
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, err
}

// Delete removes a club and every row it owns: memberships, join
// requests, fee cycles with their fee requests, matches with their
// attendance. All deletes commit together so no orphaned obligation
// survives a club.
func (s *ClubStorage) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&entity.FeeRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.FeeCycle{}).Error; err != nil {
			return err
		}
		var matchIDs []int64
		if err := tx.Model(&entity.Match{}).Where("club_id = ?", id).Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		if len(matchIDs) > 0 {
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&entity.MatchAttendance{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Match{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.JoinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.ClubMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Club{}).Error
	})
}
