package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/google/uuid"
)

type MatchStorage interface {
	CreateWithNotifications(ctx context.Context, match *entity.Match, notifications []entity.Notification) (*entity.Match, error)
	Get(ctx context.Context, id int64) (*entity.Match, error)
	GetByClubID(ctx context.Context, clubID int64) ([]entity.Match, error)
	Update(ctx context.Context, match *entity.Match) (*entity.Match, error)
	Delete(ctx context.Context, id int64) error
}

type MatchAttendanceStorage interface {
	Set(ctx context.Context, attendance *entity.MatchAttendance) (*entity.MatchAttendance, error)
	GetByMatchID(ctx context.Context, matchID int64) ([]entity.MatchAttendance, error)
	GetByUserID(ctx context.Context, userID int64) ([]entity.MatchAttendance, error)
}

type matchClubStorage interface {
	Get(ctx context.Context, id int64) (*entity.Club, error)
}

type matchMemberStorage interface {
	Get(ctx context.Context, clubID, userID int64) (*entity.ClubMember, error)
	GetActiveByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error)
}

type MatchService struct {
	storage           MatchStorage
	attendanceStorage MatchAttendanceStorage
	clubStorage       matchClubStorage
	memberStorage     matchMemberStorage
}

func NewMatchService(
	storage MatchStorage,
	attendanceStorage MatchAttendanceStorage,
	clubStorage matchClubStorage,
	memberStorage matchMemberStorage,
) *MatchService {
	return &MatchService{
		storage:           storage,
		attendanceStorage: attendanceStorage,
		clubStorage:       clubStorage,
		memberStorage:     memberStorage,
	}
}

// Create schedules a match and fans out a match_created notice to the
// active roster, same shape as a club broadcast: recipient rows plus
// the admin's audit row, one transaction.
func (s *MatchService) Create(ctx context.Context, input dto.CreateMatch, requesterID int64) (*entity.Match, error) {
	matchDate, err := time.Parse(time.RFC3339, input.MatchDate)
	if err != nil {
		return nil, errorz.Validation
	}

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

	match := entity.Match{
		ClubID:      input.ClubID,
		MatchDate:   matchDate,
		Location:    input.Location,
		Description: input.Description,
		CreatedBy:   &requesterID,
	}

	batchID := uuid.New().String()
	message := fmt.Sprintf("New match for %s on %s", club.Name, matchDate.Format("2006-01-02 15:04"))
	notifications := make([]entity.Notification, 0, len(members)+1)
	for _, member := range members {
		notifications = append(notifications, entity.Notification{
			UserID:  member.UserID,
			Type:    entity.NotificationMatchCreated,
			Message: message,
			Origin:  entity.OriginRecipient,
			BatchID: batchID,
		})
	}
	if len(members) > 0 {
		notifications = append(notifications, entity.Notification{
			UserID:  requesterID,
			Type:    entity.NotificationMatchCreated,
			Message: message,
			Origin:  entity.OriginAudit,
			BatchID: batchID,
		})
	}

	return s.storage.CreateWithNotifications(ctx, &match, notifications)
}

func (s *MatchService) Get(ctx context.Context, id int64) (*entity.Match, error) {
	match, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return match, nil
}

func (s *MatchService) GetByClubID(ctx context.Context, clubID int64) ([]entity.Match, error) {
	return s.storage.GetByClubID(ctx, clubID)
}

func (s *MatchService) Update(ctx context.Context, id int64, input dto.CreateMatch, requesterID int64) (*entity.Match, error) {
	match, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	club, err := s.clubStorage.Get(ctx, match.ClubID)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, errorz.Forbidden
	}

	if input.MatchDate != "" {
		matchDate, errParse := time.Parse(time.RFC3339, input.MatchDate)
		if errParse != nil {
			return nil, errorz.Validation
		}
		match.MatchDate = matchDate
	}
	if input.Location != "" {
		match.Location = input.Location
	}
	if input.Description != "" {
		match.Description = input.Description
	}

	return s.storage.Update(ctx, match)
}

func (s *MatchService) Delete(ctx context.Context, id, requesterID int64) error {
	match, err := s.storage.Get(ctx, id)
	if err != nil {
		return storageError(err)
	}
	club, err := s.clubStorage.Get(ctx, match.ClubID)
	if err != nil {
		return storageError(err)
	}
	if club.AdminUserID != requesterID {
		return errorz.Forbidden
	}
	return s.storage.Delete(ctx, id)
}

// SetAttendance records the caller's answer for a match, one row per
// (match, user): a second answer updates the first via the duplicate
// absorption in the storage layer.
func (s *MatchService) SetAttendance(ctx context.Context, matchID, userID int64, status entity.AttendanceStatus) (*entity.MatchAttendance, error) {
	if !status.Valid() {
		return nil, errorz.Validation
	}

	match, err := s.storage.Get(ctx, matchID)
	if err != nil {
		return nil, storageError(err)
	}

	member, err := s.memberStorage.Get(ctx, match.ClubID, userID)
	if err != nil {
		return nil, errorz.Forbidden
	}
	if member.Status != entity.MemberActive {
		return nil, errorz.Forbidden
	}

	return s.attendanceStorage.Set(ctx, &entity.MatchAttendance{
		MatchID: matchID,
		UserID:  userID,
		Status:  status,
	})
}

func (s *MatchService) ListAttendance(ctx context.Context, matchID int64) ([]entity.MatchAttendance, error) {
	return s.attendanceStorage.GetByMatchID(ctx, matchID)
}

func (s *MatchService) ListMyAttendance(ctx context.Context, userID int64) ([]entity.MatchAttendance, error) {
	return s.attendanceStorage.GetByUserID(ctx, userID)
}
