package validator

import (
	"time"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// FeeCycleDate parses the ISO due date before any write happens.
func FeeCycleDate(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FeeCycleInput(input dto.CreateFeeCycle) bool {
	if input.ClubID == 0 || input.Title == "" || input.Amount <= 0 {
		return false
	}
	if input.BankName == "" || input.BankAccount == "" || input.BankHolder == "" {
		return false
	}
	return true
}

// FeeCycleUpdateInput holds an update to the same bar as creation,
// minus the immutable club id.
func FeeCycleUpdateInput(input dto.UpdateFeeCycle) bool {
	if input.Title == "" || input.Amount <= 0 {
		return false
	}
	if input.BankName == "" || input.BankAccount == "" || input.BankHolder == "" {
		return false
	}
	return true
}
