package ports

import (
	"context"
	"time"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts record identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TokenVerifier resolves a raw bearer credential to a verified email.
// Verification failures map to ErrUnauthenticated; provider outages map to
// ErrProviderUnavailable and must never be reported as an invalid token.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (string, error)
}

// ApplicationFilter narrows application listings; zero value lists all.
type ApplicationFilter struct {
	Status entities.ApplicationStatus
}

// Repository is the write/read boundary for identity domain state.
type Repository interface {
	GetIdentityByEmail(ctx context.Context, email string) (entities.Identity, bool, error)
	GetIdentityByID(ctx context.Context, identityID string) (entities.Identity, bool, error)
	InsertIdentityIfAbsent(ctx context.Context, identity entities.Identity) (bool, entities.Identity, error)
	UpdateIdentityRole(ctx context.Context, identityID string, role entities.Role) (entities.Identity, error)
	UpdateIdentityRoleByEmail(ctx context.Context, email string, role entities.Role) (int64, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	ListIdentities(ctx context.Context) ([]entities.Identity, error)

	GetApplicationByEmail(ctx context.Context, email string) (entities.LibrarianApplication, bool, error)
	GetApplicationByID(ctx context.Context, applicationID string) (entities.LibrarianApplication, bool, error)
	InsertApplicationIfAbsent(ctx context.Context, application entities.LibrarianApplication) (bool, entities.LibrarianApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status entities.ApplicationStatus) (entities.LibrarianApplication, error)
	DeleteApplication(ctx context.Context, applicationID string) error
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]entities.LibrarianApplication, error)
}
