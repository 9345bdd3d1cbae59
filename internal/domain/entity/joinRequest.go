package entity

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

type JoinRequestStatus string

const (
	JoinPending  JoinRequestStatus = "pending"
	JoinApproved JoinRequestStatus = "approved"
	JoinRejected JoinRequestStatus = "rejected"
)

type JoinRequestAction string

const (
	JoinActionApprove JoinRequestAction = "approve"
	JoinActionReject  JoinRequestAction = "reject"
)

// joinTransitions is the single transition table for join requests.
// Every mutating operation consults it instead of re-deriving legality
// per call site. Approved and rejected are terminal: there is no
// un-approve and no rejecting an already-approved request.
var joinTransitions = map[JoinRequestStatus]map[JoinRequestAction]JoinRequestStatus{
	JoinPending: {
		JoinActionApprove: JoinApproved,
		JoinActionReject:  JoinRejected,
	},
}

type JoinRequest struct {
	ID          int64             `gorm:"primaryKey" json:"id"`
	ClubID      int64             `gorm:"not null;index:idx_join_requests_club" json:"club_id"`
	UserID      int64             `gorm:"not null" json:"user_id"`
	Status      JoinRequestStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	RequestedAt time.Time         `json:"requested_at"`
	RespondedAt *time.Time        `json:"responded_at,omitempty"`

	Club *Club `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"club,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// Transition applies action to the request, setting responded_at exactly
// once at the pending -> {approved, rejected} edge. Illegal transitions
// return errorz.Conflict.
func (r *JoinRequest) Transition(action JoinRequestAction, now time.Time) error {
	next, ok := joinTransitions[r.Status][action]
	if !ok {
		return errorz.Conflict
	}
	r.Status = next
	r.RespondedAt = &now
	return nil
}
