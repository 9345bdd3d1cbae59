package service

import (
	"errors"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"gorm.io/gorm"
)

// storageError maps gorm's translated errors onto the service
// taxonomy. Callers that want a different semantic for a duplicate key
// (the idempotent-no-op branches) handle gorm.ErrDuplicatedKey before
// getting here.
func storageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorz.NotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorz.Conflict
	default:
		return err
	}
}
