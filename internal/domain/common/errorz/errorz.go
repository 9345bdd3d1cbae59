package errorz

import "errors"

var (
	NotFound     = errors.New("not found")
	Forbidden    = errors.New("forbidden")
	Conflict     = errors.New("conflict")
	Validation   = errors.New("validation failed")
	Unauthorized = errors.New("unauthorized")
)
