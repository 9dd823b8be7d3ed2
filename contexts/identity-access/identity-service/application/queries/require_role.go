package queries

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/identity-access/identity-service/application"
	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// RequireRoleQuery checks that one verified email carries a required role.
type RequireRoleQuery struct {
	Email string
	Role  entities.Role
}

// RequireRoleUseCase is the role guard behind admin/librarian routes.
// It runs after token verification as its own store round-trip and fails
// closed: a missing identity is forbidden, not unauthenticated.
type RequireRoleUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u RequireRoleUseCase) Execute(ctx context.Context, query RequireRoleQuery) error {
	logger := application.ResolveLogger(u.Logger)

	email := strings.ToLower(strings.TrimSpace(query.Email))
	if email == "" {
		return domainerrors.ErrForbidden
	}

	identity, found, err := u.Repository.GetIdentityByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !found || identity.Role != query.Role {
		logger.Warn("role guard rejected request",
			"event", "identity_role_guard_rejected",
			"module", "identity-access/identity-service",
			"layer", "application",
			"email", email,
			"required_role", string(query.Role),
		)
		return domainerrors.ErrForbidden
	}
	return nil
}
