package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/identity-access/identity-service/application"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// DeleteIdentityCommand removes one identity record. Admin-gated at the boundary.
type DeleteIdentityCommand struct {
	IdentityID string
}

// DeleteIdentityUseCase removes an identity by id.
type DeleteIdentityUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DeleteIdentityUseCase) Execute(ctx context.Context, cmd DeleteIdentityCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.IdentityID) == "" {
		return domainerrors.ErrIdentityNotFound
	}

	if err := u.Repository.DeleteIdentity(ctx, cmd.IdentityID); err != nil {
		logger.Error("identity delete failed",
			"event", "identity_delete_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"identity_id", cmd.IdentityID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("identity delete completed",
		"event", "identity_delete_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"identity_id", cmd.IdentityID,
	)
	return nil
}
