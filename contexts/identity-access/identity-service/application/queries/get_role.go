package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// GetRoleQuery resolves the display role for one email.
type GetRoleQuery struct {
	Email string
}

// GetRoleUseCase returns the stored role, defaulting to user when no
// identity exists. Absence is not an error here; this backs a public
// display endpoint.
type GetRoleUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetRoleUseCase) Execute(ctx context.Context, query GetRoleQuery) (entities.Role, error) {
	email := strings.ToLower(strings.TrimSpace(query.Email))

	identity, found, err := u.Repository.GetIdentityByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !found {
		return entities.RoleUser, nil
	}
	return identity.Role, nil
}
