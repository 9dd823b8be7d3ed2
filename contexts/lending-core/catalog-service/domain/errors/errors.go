package errors

import "errors"

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrForbidden            = errors.New("forbidden access")
	ErrInvalidListing       = errors.New("invalid listing")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidListingStatus = errors.New("invalid listing status")
)
