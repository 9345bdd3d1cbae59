package entity

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

type FeeRequestStatus string

const (
	FeeNotPaid      FeeRequestStatus = "not_paid"
	FeeReportedPaid FeeRequestStatus = "reported_paid"
	FeeConfirmed    FeeRequestStatus = "confirmed"
)

type FeeRequestAction string

const (
	FeeActionReport  FeeRequestAction = "report"
	FeeActionConfirm FeeRequestAction = "confirm"
)

// feeTransitions is the single transition table for fee requests.
// Confirmed is terminal; nothing regresses out of it. Confirm is legal
// straight from not_paid (offline payment, no prior report required),
// and re-reporting before confirmation just refreshes reported_at.
var feeTransitions = map[FeeRequestStatus]map[FeeRequestAction]FeeRequestStatus{
	FeeNotPaid: {
		FeeActionReport:  FeeReportedPaid,
		FeeActionConfirm: FeeConfirmed,
	},
	FeeReportedPaid: {
		FeeActionReport:  FeeReportedPaid,
		FeeActionConfirm: FeeConfirmed,
	},
}

// FeeRequest is one member's payment obligation within a cycle, a
// snapshot row created at cycle-creation time. Unique per
// (fee_cycle_id, user_id).
type FeeRequest struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	FeeCycleID  int64            `gorm:"not null;uniqueIndex:idx_fee_requests_pair;index:idx_fee_requests_cycle" json:"fee_cycle_id"`
	ClubID      int64            `gorm:"not null;index:idx_fee_requests_club" json:"club_id"`
	UserID      int64            `gorm:"not null;uniqueIndex:idx_fee_requests_pair;index:idx_fee_requests_user" json:"user_id"`
	Status      FeeRequestStatus `gorm:"type:varchar(16);not null;default:not_paid" json:"status"`
	ReportedAt  *time.Time       `json:"reported_at,omitempty"`
	ConfirmedAt *time.Time       `json:"confirmed_at,omitempty"`
	ConfirmedBy *int64           `json:"confirmed_by,omitempty"`
	AdminNote   string           `json:"admin_note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`

	FeeCycle *FeeCycle `gorm:"foreignKey:FeeCycleID;constraint:OnDelete:CASCADE" json:"fee_cycle,omitempty"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// Transition applies action via the transition table, returning
// errorz.Conflict for anything illegal (in practice: any action on a
// confirmed request).
func (r *FeeRequest) Transition(action FeeRequestAction, now time.Time) error {
	next, ok := feeTransitions[r.Status][action]
	if !ok {
		return errorz.Conflict
	}
	r.Status = next
	switch action {
	case FeeActionReport:
		r.ReportedAt = &now
	case FeeActionConfirm:
		r.ConfirmedAt = &now
	}
	return nil
}
