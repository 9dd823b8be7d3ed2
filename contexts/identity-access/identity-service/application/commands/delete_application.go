package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/identity-access/identity-service/application"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// DeleteApplicationCommand removes one librarian application. Admin-gated.
type DeleteApplicationCommand struct {
	ApplicationID string
}

// DeleteApplicationUseCase removes an application by id.
type DeleteApplicationUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DeleteApplicationUseCase) Execute(ctx context.Context, cmd DeleteApplicationCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.ApplicationID) == "" {
		return domainerrors.ErrApplicationNotFound
	}

	if err := u.Repository.DeleteApplication(ctx, cmd.ApplicationID); err != nil {
		logger.Error("application delete failed",
			"event", "identity_delete_application_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"application_id", cmd.ApplicationID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("application delete completed",
		"event", "identity_delete_application_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"application_id", cmd.ApplicationID,
	)
	return nil
}
