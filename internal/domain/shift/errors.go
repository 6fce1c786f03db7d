package shift

import "errors"

var (
	ErrDayNotFound = errors.New("Day record not found")
	ErrEmptyDate   = errors.New("Day record has no date")
)
