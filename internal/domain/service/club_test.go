package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

func TestClubCreateEnrollsAdmin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	club := f.seedClub(t, "FC Test", admin)

	member, err := f.members.Get(ctx, club.ID, admin.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, member.Role)
	require.Equal(t, entity.MemberActive, member.Status)
}

func TestClubCreateDuplicateNameConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin1 := f.seedUser(t, "admin1@club.test", "Admin1", entity.OnboardingOwner)
	admin2 := f.seedUser(t, "admin2@club.test", "Admin2", entity.OnboardingOwner)
	f.seedClub(t, "FC Test", admin1)

	_, err := f.clubs.Create(ctx, dto.CreateClub{Name: "FC Test"}, admin2.ID)
	require.ErrorIs(t, err, errorz.Conflict)
}

func TestClubCreateSecondClubSameAdminConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	f.seedClub(t, "FC One", admin)

	_, err := f.clubs.Create(ctx, dto.CreateClub{Name: "FC Two"}, admin.ID)
	require.ErrorIs(t, err, errorz.Conflict)
}

func TestClubGetByAdmin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	other := f.seedUser(t, "other@club.test", "Other", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	got, err := f.clubs.GetByAdmin(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, club.ID, got.ID)

	_, err = f.clubs.GetByAdmin(ctx, other.ID)
	require.ErrorIs(t, err, errorz.NotFound)
}

func TestClubUpdateNonAdminForbidden(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	other := f.seedUser(t, "other@club.test", "Other", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)

	_, err := f.clubs.Update(ctx, club.ID, dto.UpdateClub{Name: "Hijacked"}, other.ID)
	require.ErrorIs(t, err, errorz.Forbidden)

	updated, err := f.clubs.Update(ctx, club.ID, dto.UpdateClub{Description: "Sunday league"}, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "Sunday league", updated.Description)
	require.Equal(t, "FC Test", updated.Name)
}

func TestClubDeleteCascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	member := f.seedUser(t, "member@club.test", "Member", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, member, admin)

	_, err := f.fees.CreateCycle(ctx, feeCycleInput(club.ID), admin.ID)
	require.NoError(t, err)

	require.NoError(t, f.clubs.Delete(ctx, club.ID, admin.ID))

	_, err = f.clubs.Get(ctx, club.ID)
	require.ErrorIs(t, err, errorz.NotFound)

	for _, model := range []interface{}{
		&entity.ClubMember{},
		&entity.JoinRequest{},
		&entity.FeeCycle{},
	} {
		var count int64
		require.NoError(t, f.db.Model(model).Where("club_id = ?", club.ID).Count(&count).Error)
		require.Zero(t, count)
	}

	var feeRequests int64
	require.NoError(t, f.db.Model(&entity.FeeRequest{}).Where("club_id = ?", club.ID).Count(&feeRequests).Error)
	require.Zero(t, feeRequests)
}

func TestLeaveTwiceConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	member := f.seedUser(t, "member@club.test", "Member", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, member, admin)

	left, err := f.members.Leave(ctx, club.ID, member.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MemberLeft, left.Status)

	_, err = f.members.Leave(ctx, club.ID, member.ID)
	require.ErrorIs(t, err, errorz.Conflict)

	// the row survives as the record of the pair
	require.EqualValues(t, 1, f.countMembers(t, club.ID, member.ID))
}

func TestListActiveMembersExcludesLeft(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	admin := f.seedUser(t, "admin@club.test", "Admin", entity.OnboardingOwner)
	m1 := f.seedUser(t, "m1@club.test", "M1", entity.OnboardingMember)
	m2 := f.seedUser(t, "m2@club.test", "M2", entity.OnboardingMember)
	club := f.seedClub(t, "FC Test", admin)
	f.joinApproved(t, club, m1, admin)
	f.joinApproved(t, club, m2, admin)

	_, err := f.members.Leave(ctx, club.ID, m2.ID)
	require.NoError(t, err)

	roster, err := f.members.ListActiveMembers(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	for _, member := range roster {
		require.NotEqual(t, m2.ID, member.UserID)
	}
}
