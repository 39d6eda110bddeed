package structs

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("no rows in result set")
	ErrUniqueViolation = errors.New("unique Violation error")
	ErrInvalidCount    = errors.New("result count must be a positive integer")
	ErrNoSession       = errors.New("no active conversation")
	ErrStaleSession    = errors.New("conversation was replaced")
)
