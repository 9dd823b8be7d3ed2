package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/identity-access/identity-service/application"
	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// ChangeRoleCommand mutates one identity's role. Admin-gated at the boundary.
type ChangeRoleCommand struct {
	IdentityID string
	Role       entities.Role
}

// ChangeRoleUseCase applies an admin role change to a stored identity.
type ChangeRoleUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (entities.Identity, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.IdentityID) == "" {
		return entities.Identity{}, domainerrors.ErrIdentityNotFound
	}
	if !cmd.Role.IsValid() {
		return entities.Identity{}, domainerrors.ErrInvalidRole
	}

	updated, err := u.Repository.UpdateIdentityRole(ctx, cmd.IdentityID, cmd.Role)
	if err != nil {
		logger.Error("role change failed",
			"event", "identity_change_role_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"identity_id", cmd.IdentityID,
			"role", string(cmd.Role),
			"error", err.Error(),
		)
		return entities.Identity{}, err
	}

	logger.Info("role change completed",
		"event", "identity_change_role_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"identity_id", cmd.IdentityID,
		"role", string(cmd.Role),
	)
	return updated, nil
}
