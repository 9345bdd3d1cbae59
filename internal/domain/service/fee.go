package service

import (
	"context"
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/utils/validator"
)

type FeeCycleStorage interface {
	CreateWithRequests(ctx context.Context, cycle *entity.FeeCycle, requests []entity.FeeRequest) (*entity.FeeCycle, error)
	Get(ctx context.Context, id int64) (*entity.FeeCycle, error)
	GetWithRequests(ctx context.Context, id int64) (*entity.FeeCycle, error)
	GetByClubID(ctx context.Context, clubID int64) ([]entity.FeeCycle, error)
	Update(ctx context.Context, cycle *entity.FeeCycle) (*entity.FeeCycle, error)
}

type FeeRequestStorage interface {
	Get(ctx context.Context, id int64) (*entity.FeeRequest, error)
	GetByCycleID(ctx context.Context, cycleID int64) ([]entity.FeeRequest, error)
	GetByUserAndClubs(ctx context.Context, userID int64, clubIDs []int64) ([]entity.FeeRequest, error)
	Update(ctx context.Context, request *entity.FeeRequest) (*entity.FeeRequest, error)
}

type feeClubStorage interface {
	Get(ctx context.Context, id int64) (*entity.Club, error)
}

type feeUserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

type feeMemberStorage interface {
	GetActiveByClubID(ctx context.Context, clubID int64) ([]entity.ClubMember, error)
	GetByUserID(ctx context.Context, userID int64, status entity.MemberStatus) ([]entity.ClubMember, error)
}

type FeeService struct {
	cycleStorage   FeeCycleStorage
	requestStorage FeeRequestStorage
	clubStorage    feeClubStorage
	userStorage    feeUserStorage
	memberStorage  feeMemberStorage
}

func NewFeeService(
	cycleStorage FeeCycleStorage,
	requestStorage FeeRequestStorage,
	clubStorage feeClubStorage,
	userStorage feeUserStorage,
	memberStorage feeMemberStorage,
) *FeeService {
	return &FeeService{
		cycleStorage:   cycleStorage,
		requestStorage: requestStorage,
		clubStorage:    clubStorage,
		userStorage:    userStorage,
		memberStorage:  memberStorage,
	}
}

// CreateCycle opens one billing round and fans out one obligation per
// member active right now; the issuing admin collects, they are not
// billed. The roster read is an unlocked snapshot: a member leaving
// while the cycle is being created may or may not get an obligation,
// which is accepted behavior. The cycle insert and every fee-request
// insert commit together (no partial billing).
func (s *FeeService) CreateCycle(ctx context.Context, input dto.CreateFeeCycle, requesterID int64) (*entity.FeeCycle, error) {
	if !validator.FeeCycleInput(input) {
		return nil, errorz.Validation
	}
	dueDate, ok := validator.FeeCycleDate(input.DueDate)
	if !ok {
		return nil, errorz.Validation
	}

	user, err := s.userStorage.Get(ctx, requesterID)
	if err != nil {
		return nil, storageError(err)
	}
	if user.OnboardingType != entity.OnboardingOwner {
		return nil, errorz.Forbidden
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

	cycle := entity.FeeCycle{
		ClubID:       input.ClubID,
		Title:        input.Title,
		Message:      input.Message,
		Amount:       input.Amount,
		DueDate:      dueDate,
		BankName:     input.BankName,
		BankAccount:  input.BankAccount,
		BankHolder:   input.BankHolder,
		BankMemoRule: input.BankMemoRule,
		CreatedBy:    requesterID,
	}
	requests := make([]entity.FeeRequest, 0, len(members))
	for _, member := range members {
		if member.UserID == club.AdminUserID {
			continue
		}
		requests = append(requests, entity.FeeRequest{
			ClubID: input.ClubID,
			UserID: member.UserID,
			Status: entity.FeeNotPaid,
		})
	}

	return s.cycleStorage.CreateWithRequests(ctx, &cycle, requests)
}

// UpdateCycle replaces every mutable field; cycles are immutable except
// via this full update.
func (s *FeeService) UpdateCycle(ctx context.Context, cycleID int64, input dto.UpdateFeeCycle, requesterID int64) (*entity.FeeCycle, error) {
	if !validator.FeeCycleUpdateInput(input) {
		return nil, errorz.Validation
	}
	dueDate, ok := validator.FeeCycleDate(input.DueDate)
	if !ok {
		return nil, errorz.Validation
	}

	cycle, err := s.cycleStorage.Get(ctx, cycleID)
	if err != nil {
		return nil, storageError(err)
	}
	club, err := s.clubStorage.Get(ctx, cycle.ClubID)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, errorz.Forbidden
	}

	cycle.Title = input.Title
	cycle.Message = input.Message
	cycle.Amount = input.Amount
	cycle.DueDate = dueDate
	cycle.BankName = input.BankName
	cycle.BankAccount = input.BankAccount
	cycle.BankHolder = input.BankHolder
	cycle.BankMemoRule = input.BankMemoRule

	return s.cycleStorage.Update(ctx, cycle)
}

// Report marks the caller's own obligation as reported_paid. Reporting
// straight from not_paid is legal; reporting a confirmed request is a
// Conflict via the transition table.
func (s *FeeService) Report(ctx context.Context, feeRequestID, userID int64) (*entity.FeeRequest, error) {
	request, err := s.requestStorage.Get(ctx, feeRequestID)
	if err != nil {
		return nil, storageError(err)
	}
	if request.UserID != userID {
		return nil, errorz.Forbidden
	}
	if err = request.Transition(entity.FeeActionReport, time.Now()); err != nil {
		return nil, err
	}
	return s.requestStorage.Update(ctx, request)
}

// Confirm is terminal and irreversible. It does not require a prior
// report: an admin may confirm a not_paid request for an offline
// payment.
func (s *FeeService) Confirm(ctx context.Context, feeRequestID, adminUserID int64, adminNote string) (*entity.FeeRequest, error) {
	request, err := s.requestStorage.Get(ctx, feeRequestID)
	if err != nil {
		return nil, storageError(err)
	}

	user, err := s.userStorage.Get(ctx, adminUserID)
	if err != nil {
		return nil, storageError(err)
	}
	if user.OnboardingType != entity.OnboardingOwner {
		return nil, errorz.Forbidden
	}

	club, err := s.clubStorage.Get(ctx, request.ClubID)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != adminUserID {
		return nil, errorz.Forbidden
	}

	if err = request.Transition(entity.FeeActionConfirm, time.Now()); err != nil {
		return nil, err
	}
	request.ConfirmedBy = &adminUserID
	if adminNote != "" {
		request.AdminNote = adminNote
	}
	return s.requestStorage.Update(ctx, request)
}

// ListByCycle is admin-only.
func (s *FeeService) ListByCycle(ctx context.Context, cycleID, requesterID int64) ([]entity.FeeRequest, error) {
	cycle, err := s.cycleStorage.Get(ctx, cycleID)
	if err != nil {
		return nil, storageError(err)
	}

	user, err := s.userStorage.Get(ctx, requesterID)
	if err != nil {
		return nil, storageError(err)
	}
	if user.OnboardingType != entity.OnboardingOwner {
		return nil, errorz.Forbidden
	}

	club, err := s.clubStorage.Get(ctx, cycle.ClubID)
	if err != nil {
		return nil, storageError(err)
	}
	if club.AdminUserID != requesterID {
		return nil, errorz.Forbidden
	}

	return s.requestStorage.GetByCycleID(ctx, cycleID)
}

// ListMine returns the caller's obligations across every club where
// they hold an active membership; no memberships means an empty list,
// not an error.
func (s *FeeService) ListMine(ctx context.Context, userID int64) ([]entity.FeeRequest, error) {
	memberships, err := s.memberStorage.GetByUserID(ctx, userID, entity.MemberActive)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []entity.FeeRequest{}, nil
	}

	clubIDs := make([]int64, 0, len(memberships))
	for _, membership := range memberships {
		clubIDs = append(clubIDs, membership.ClubID)
	}

	return s.requestStorage.GetByUserAndClubs(ctx, userID, clubIDs)
}

// GetClubCycles lists a club's billing rounds: the admin sees them as
// owner, everyone else needs an active membership.
func (s *FeeService) GetClubCycles(ctx context.Context, clubID, requesterID int64) ([]entity.FeeCycle, error) {
	if err := s.authorizeView(ctx, clubID, requesterID); err != nil {
		return nil, err
	}
	return s.cycleStorage.GetByClubID(ctx, clubID)
}

// GetCycle returns one cycle with its fee requests, under the same
// visibility rule as GetClubCycles.
func (s *FeeService) GetCycle(ctx context.Context, cycleID, requesterID int64) (*entity.FeeCycle, error) {
	cycle, err := s.cycleStorage.GetWithRequests(ctx, cycleID)
	if err != nil {
		return nil, storageError(err)
	}
	if err = s.authorizeView(ctx, cycle.ClubID, requesterID); err != nil {
		return nil, err
	}
	return cycle, nil
}

func (s *FeeService) authorizeView(ctx context.Context, clubID, requesterID int64) error {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return storageError(err)
	}

	user, err := s.userStorage.Get(ctx, requesterID)
	if err != nil {
		return storageError(err)
	}

	if user.OnboardingType == entity.OnboardingOwner {
		if club.AdminUserID != requesterID {
			return errorz.Forbidden
		}
		return nil
	}

	memberships, err := s.memberStorage.GetByUserID(ctx, requesterID, entity.MemberActive)
	if err != nil {
		return err
	}
	for _, membership := range memberships {
		if membership.ClubID == clubID {
			return nil
		}
	}
	return errorz.Forbidden
}
