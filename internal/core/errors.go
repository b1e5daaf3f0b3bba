package core

import "errors"

var (
	ErrNegativeAmount   = errors.New("negative amount")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidKind      = errors.New("invalid type")
	ErrBadDateFormat    = errors.New("bad date format")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidRow       = errors.New("invalid row")
)

// IsValidation reports whether err is a record validation failure, as
// opposed to an I/O or parse-stage problem.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrBadDateFormat) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidRow)
}
