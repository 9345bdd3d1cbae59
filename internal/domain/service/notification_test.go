package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

func TestBroadcastWritesRecipientAndAuditRows(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	m1 := f.seedUser(t, "m1@club.test", "M1", entity.OnboardingMember)
	m2 := f.seedUser(t, "m2@club.test", "M2", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, m1, admin)
	f.joinApproved(t, club, m2, admin)

	result, err := f.notifications.BroadcastToClub(ctx, dto.ClubNotice{
		ClubID:  club.ID,
		Title:   "Training",
		Message: "Saturday 10am",
	}, admin.ID)
	require.NoError(t, err)
	require.NotEmpty(t, result.BatchID)
	// active roster: admin + m1 + m2
	require.Equal(t, 3, result.Recipients)

	// recipients plus exactly one audit row, all under one batch
	var count int64
	require.NoError(t, f.db.Model(&entity.Notification{}).
		Where("batch_id = ?", result.BatchID).
		Count(&count).Error)
	require.EqualValues(t, 4, count)

	m1Rows, err := f.notifications.FindByUser(ctx, m1.ID, false)
	require.NoError(t, err)
	require.Len(t, m1Rows, 2) // join_approved + club_notice
	require.Equal(t, "Training: Saturday 10am", m1Rows[0].Message)
	require.Equal(t, entity.OriginRecipient, m1Rows[0].Origin)

	auditRows, err := f.notifications.FindAudit(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, auditRows, 1)
	require.Equal(t, entity.OriginAudit, auditRows[0].Origin)
	require.Equal(t, result.BatchID, auditRows[0].BatchID)

	// audit rows never leak into the admin's recipient feed
	adminFeed, err := f.notifications.FindByUser(ctx, admin.ID, false)
	require.NoError(t, err)
	for _, row := range adminFeed {
		require.Equal(t, entity.OriginRecipient, row.Origin)
	}
}

func TestBroadcastEmptyRosterIsNoOp(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	club := f.seedClub(t, "FC Test", admin)

	// empty the roster: even the admin steps out
	_, err := f.members.Leave(ctx, club.ID, admin.ID)
	require.NoError(t, err)

	result, err := f.notifications.BroadcastToClub(ctx, dto.ClubNotice{
		ClubID:  club.ID,
		Title:   "Hello",
		Message: "anyone?",
	}, admin.ID)
	require.NoError(t, err)
	require.Equal(t, 0, result.Recipients)

	var count int64
	require.NoError(t, f.db.Model(&entity.Notification{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestBroadcastNonAdminForbidden(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	member := f.seedUser(t, "member@club.test", "Member", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, member, admin)

	_, err := f.notifications.BroadcastToClub(ctx, dto.ClubNotice{
		ClubID:  club.ID,
		Title:   "Hi",
		Message: "there",
	}, member.ID)
	require.ErrorIs(t, err, errorz.Forbidden)
}

func TestNotificationReadFlags(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	member := f.seedUser(t, "member@club.test", "Member", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, member, admin)

	_, err := f.notifications.BroadcastToClub(ctx, dto.ClubNotice{
		ClubID:  club.ID,
		Title:   "One",
		Message: "first",
	}, admin.ID)
	require.NoError(t, err)

	unread, err := f.notifications.FindByUser(ctx, member.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 2) // join_approved + broadcast

	read, err := f.notifications.MarkRead(ctx, unread[0].ID, member.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)

	// only the owner of a row may mark it
	_, err = f.notifications.MarkRead(ctx, unread[1].ID, admin.ID)
	require.ErrorIs(t, err, errorz.Forbidden)

	require.NoError(t, f.notifications.MarkAllRead(ctx, member.ID))

	unread, err = f.notifications.FindByUser(ctx, member.ID, true)
	require.NoError(t, err)
	require.Empty(t, unread)
}
