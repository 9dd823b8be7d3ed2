package errors

import "errors"

var (
	ErrUnauthenticated          = errors.New("unauthorized access")
	ErrProviderUnavailable      = errors.New("identity provider unavailable")
	ErrForbidden                = errors.New("forbidden access")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrInvalidRole              = errors.New("invalid role")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
	ErrIdentityNotFound         = errors.New("identity not found")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrAlreadyApplied           = errors.New("already applied")
)
