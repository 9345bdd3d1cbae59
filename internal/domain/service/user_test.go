package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
)

func TestUpdateOnboardingType(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.seedUser(t, "user@club.test", "User", entity.OnboardingMember)

	updated, err := f.users.UpdateOnboardingType(ctx, user.ID, entity.OnboardingOwner)
	require.NoError(t, err)
	require.Equal(t, entity.OnboardingOwner, updated.OnboardingType)

	_, err = f.users.UpdateOnboardingType(ctx, user.ID, entity.OnboardingType("superuser"))
	require.ErrorIs(t, err, errorz.Validation)
}

func TestUserGetNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.users.Get(context.Background(), 999)
	require.ErrorIs(t, err, errorz.NotFound)
}
