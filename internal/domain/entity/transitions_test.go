package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

func TestJoinRequestTransitions(t *testing.T) {
	now := time.Now()

	request := JoinRequest{Status: JoinPending}
	require.NoError(t, request.Transition(JoinActionApprove, now))
	require.Equal(t, JoinApproved, request.Status)
	require.NotNil(t, request.RespondedAt)

	// approved is terminal in both directions
	require.ErrorIs(t, request.Transition(JoinActionApprove, now), errorz.Conflict)
	require.ErrorIs(t, request.Transition(JoinActionReject, now), errorz.Conflict)

	request = JoinRequest{Status: JoinPending}
	require.NoError(t, request.Transition(JoinActionReject, now))
	require.Equal(t, JoinRejected, request.Status)
	require.ErrorIs(t, request.Transition(JoinActionApprove, now), errorz.Conflict)
}

func TestFeeRequestTransitions(t *testing.T) {
	now := time.Now()

	request := FeeRequest{Status: FeeNotPaid}
	require.NoError(t, request.Transition(FeeActionReport, now))
	require.Equal(t, FeeReportedPaid, request.Status)
	require.NotNil(t, request.ReportedAt)

	// re-reporting refreshes the timestamp instead of erroring
	later := now.Add(time.Minute)
	require.NoError(t, request.Transition(FeeActionReport, later))
	require.Equal(t, FeeReportedPaid, request.Status)
	require.Equal(t, later, *request.ReportedAt)

	require.NoError(t, request.Transition(FeeActionConfirm, later))
	require.Equal(t, FeeConfirmed, request.Status)
	require.NotNil(t, request.ConfirmedAt)

	// confirmed is terminal
	require.ErrorIs(t, request.Transition(FeeActionReport, later), errorz.Conflict)
	require.ErrorIs(t, request.Transition(FeeActionConfirm, later), errorz.Conflict)
}

func TestFeeRequestConfirmFromNotPaid(t *testing.T) {
	request := FeeRequest{Status: FeeNotPaid}
	require.NoError(t, request.Transition(FeeActionConfirm, time.Now()))
	require.Equal(t, FeeConfirmed, request.Status)
	require.Nil(t, request.ReportedAt)
}
