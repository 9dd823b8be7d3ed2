package errors

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrForbidden         = errors.New("forbidden access")
	ErrInvalidTransition = errors.New("invalid delivery transition")
	ErrInvalidOrder      = errors.New("invalid order")
)
