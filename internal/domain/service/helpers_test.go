package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/clubhub/clubhub-api/internal/adapters/database/postgres"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

type fixtures struct {
	db            *gorm.DB
	users         *UserService
	clubs         *ClubService
	members       *ClubMemberService
	joinRequests  *JoinRequestService
	fees          *FeeService
	notifications *NotificationService
	matches       *MatchService
}

// setup opens a per-test in-memory database to avoid cross-test
// interference and wires every service against it.
func setup(t *testing.T) *fixtures {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(postgresStorage.Migrations...))

	userStorage := postgresStorage.NewUserStorage(db)
	clubStorage := postgresStorage.NewClubStorage(db)
	memberStorage := postgresStorage.NewClubMemberStorage(db)
	joinRequestStorage := postgresStorage.NewJoinRequestStorage(db)
	feeCycleStorage := postgresStorage.NewFeeCycleStorage(db)
	feeRequestStorage := postgresStorage.NewFeeRequestStorage(db)
	notificationStorage := postgresStorage.NewNotificationStorage(db)
	matchStorage := postgresStorage.NewMatchStorage(db)
	attendanceStorage := postgresStorage.NewMatchAttendanceStorage(db)

	return &fixtures{
		db:            db,
		users:         NewUserService(userStorage),
		clubs:         NewClubService(clubStorage, userStorage),
		members:       NewClubMemberService(memberStorage),
		joinRequests:  NewJoinRequestService(joinRequestStorage, clubStorage, userStorage),
		fees:          NewFeeService(feeCycleStorage, feeRequestStorage, clubStorage, userStorage, memberStorage),
		notifications: NewNotificationService(notificationStorage, clubStorage, memberStorage),
		matches:       NewMatchService(matchStorage, attendanceStorage, clubStorage, memberStorage),
	}
}

func (f *fixtures) seedUser(t *testing.T, email, name string, onboarding entity.OnboardingType) *entity.User {
	t.Helper()
	user := entity.User{
		Email:          email,
		Password:       "secret",
		Name:           name,
		OnboardingType: onboarding,
	}
	require.NoError(t, f.db.Create(&user).Error)
	return &user
}

func (f *fixtures) seedClub(t *testing.T, name string, admin *entity.User) *entity.Club {
	t.Helper()
	club, err := f.clubs.Create(context.Background(), dto.CreateClub{Name: name}, admin.ID)
	require.NoError(t, err)
	return club
}

// joinApproved walks a user through the full join flow: request plus
// admin approval.
func (f *fixtures) joinApproved(t *testing.T, club *entity.Club, user, admin *entity.User) {
	t.Helper()
	request, err := f.joinRequests.Create(context.Background(), club.ID, user.ID)
	require.NoError(t, err)
	_, err = f.joinRequests.Approve(context.Background(), request.ID, admin.ID)
	require.NoError(t, err)
}

func (f *fixtures) countMembers(t *testing.T, clubID, userID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&entity.ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error)
	return count
}
