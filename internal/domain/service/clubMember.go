package service

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type ClubMemberStorage interface {
	Create(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error)
	Get(ctx context.Context, clubID, userID int64) (*entity.ClubMember, error)
	GetByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error)
	GetActiveByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error)
	GetByUserID(ctx context.Context, userID int64, status entity.MemberStatus) ([]entity.ClubMember, error)
	Update(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error)
}

type ClubMemberService struct {
	storage ClubMemberStorage
}

func NewClubMemberService(storage ClubMemberStorage) *ClubMemberService {
	return &ClubMemberService{
		storage: storage,
	}
}

func (s *ClubMemberService) Get(ctx context.Context, clubID, userID int64) (*entity.ClubMember, error) {
	member, err := s.storage.Get(ctx, clubID, userID)
	if err != nil {
		return nil, storageError(err)
	}
	return member, nil
}

func (s *ClubMemberService) GetByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error) {
	return s.storage.GetByClubID(ctx, clubID)
}

// ListActiveMembers returns the canonical roster for billing and
// broadcast.
func (s *ClubMemberService) ListActiveMembers(ctx context.Context, clubID int64) ([]entity.ClubMember, error) {
	return s.storage.GetActiveByClubID(ctx, clubID)
}

func (s *ClubMemberService) GetByUserID(ctx context.Context, userID int64, status entity.MemberStatus) ([]entity.ClubMember, error) {
	return s.storage.GetByUserID(ctx, userID, status)
}

// Leave flips an active membership to left. The row stays: it is the
// record that the pair existed, and the unique index keeps a later
// re-join from inserting a second row.
func (s *ClubMemberService) Leave(ctx context.Context, clubID, userID int64) (*entity.ClubMember, error) {
	member, err := s.storage.Get(ctx, clubID, userID)
	if err != nil {
		return nil, storageError(err)
	}
	if member.Status == entity.MemberLeft {
		return nil, errorz.Conflict
	}
	member.Status = entity.MemberLeft
	return s.storage.Update(ctx, member)
}
