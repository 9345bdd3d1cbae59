package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

func TestJoinRequestApproveCreatesMembership(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, entity.JoinPending, request.Status)

	// the admin was notified about the new request
	adminNotices, err := f.notifications.FindByUser(ctx, admin.ID, false)
	require.NoError(t, err)
	require.Len(t, adminNotices, 1)
	require.Equal(t, entity.NotificationJoinRequest, adminNotices[0].Type)

	approved, err := f.joinRequests.Approve(ctx, request.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, entity.JoinApproved, approved.Status)
	require.NotNil(t, approved.RespondedAt)

	member, err := f.members.Get(ctx, club.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleMember, member.Role)
	require.Equal(t, entity.MemberActive, member.Status)

	userNotices, err := f.notifications.FindByUser(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, userNotices, 1)
	require.Equal(t, entity.NotificationJoinApproved, userNotices[0].Type)
}

func TestJoinRequestSecondApproveConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)

	_, err = f.joinRequests.Approve(ctx, request.ID, admin.ID)
	require.NoError(t, err)

	_, err = f.joinRequests.Approve(ctx, request.ID, admin.ID)
	require.ErrorIs(t, err, errorz.Conflict)

	require.EqualValues(t, 1, f.countMembers(t, club.ID, user.ID))
}

// Approving a pending request for someone who already holds the
// membership row must succeed: the duplicate membership insert is
// absorbed and the request still flips to approved.
func TestJoinRequestApproveExistingMemberIdempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)

	existing := entity.ClubMember{
		ClubID:   club.ID,
		UserID:   user.ID,
		Role:     entity.RoleMember,
		Status:   entity.MemberActive,
		JoinedAt: time.Now(),
	}
	require.NoError(t, f.db.Create(&existing).Error)

	approved, err := f.joinRequests.Approve(ctx, request.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, entity.JoinApproved, approved.Status)

	require.EqualValues(t, 1, f.countMembers(t, club.ID, user.ID))
}

func TestJoinRequestRejectAfterApproveConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)
	_, err = f.joinRequests.Approve(ctx, request.ID, admin.ID)
	require.NoError(t, err)

	_, err = f.joinRequests.Reject(ctx, request.ID, admin.ID)
	require.ErrorIs(t, err, errorz.Conflict)

	// the membership from the approval survives
	member, err := f.members.Get(ctx, club.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MemberActive, member.Status)
}

func TestJoinRequestReject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)

	rejected, err := f.joinRequests.Reject(ctx, request.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, entity.JoinRejected, rejected.Status)
	require.NotNil(t, rejected.RespondedAt)

	// no membership was created
	require.EqualValues(t, 0, f.countMembers(t, club.ID, user.ID))

	userNotices, err := f.notifications.FindByUser(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, userNotices, 1)
	require.Equal(t, entity.NotificationJoinRejected, userNotices[0].Type)
}

func TestJoinRequestApproveNonAdminForbidden(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	outsider := f.seedUser(t, "outsider@club.test", "Outsider", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	request, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)

	_, err = f.joinRequests.Approve(ctx, request.ID, outsider.ID)
	require.ErrorIs(t, err, errorz.Forbidden)
}

func TestJoinRequestDuplicatePendingConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	_, err := f.joinRequests.Create(ctx, club.ID, user.ID)
	require.NoError(t, err)

	_, err = f.joinRequests.Create(ctx, club.ID, user.ID)
	require.ErrorIs(t, err, errorz.Conflict)
}

func TestJoinRequestUnknownClubNotFound(t *testing.T) {
	f := setup(t)

	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)

	_, err := f.joinRequests.Create(context.Background(), 4242, user.ID)
	require.ErrorIs(t, err, errorz.NotFound)
}
