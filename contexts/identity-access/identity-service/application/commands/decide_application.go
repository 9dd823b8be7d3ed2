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

// DecideApplicationCommand approves or rejects one pending application.
type DecideApplicationCommand struct {
	ApplicationID string
	Status        entities.ApplicationStatus
}

// DecideApplicationResult reports the updated application and whether the
// role cascade reached a matching identity.
type DecideApplicationResult struct {
	Application entities.LibrarianApplication `json:"application"`
	RoleUpdated bool                          `json:"role_updated"`
	RoleMatched int64                         `json:"role_matched"`
}

// DecideApplicationUseCase applies an admin decision. Approval cascades a
// role change onto the identity with the application's email.
type DecideApplicationUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DecideApplicationUseCase) Execute(ctx context.Context, cmd DecideApplicationCommand) (DecideApplicationResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.ApplicationID) == "" {
		return DecideApplicationResult{}, domainerrors.ErrApplicationNotFound
	}
	if !cmd.Status.IsValid() {
		return DecideApplicationResult{}, domainerrors.ErrInvalidApplicationStatus
	}

	updated, err := u.Repository.UpdateApplicationStatus(ctx, cmd.ApplicationID, cmd.Status)
	if err != nil {
		logger.Error("application decision write failed",
			"event", "identity_decide_application_write_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"application_id", cmd.ApplicationID,
			"status", string(cmd.Status),
			"error", err.Error(),
		)
		return DecideApplicationResult{}, err
	}

	result := DecideApplicationResult{Application: updated}
	if cmd.Status == entities.ApplicationApproved {
		matched, err := u.Repository.UpdateIdentityRoleByEmail(ctx, updated.Email, entities.RoleLibrarian)
		if err != nil {
			logger.Error("role cascade after approval failed",
				"event", "identity_approval_role_cascade_failed",
				"module", "identity-access/identity-service",
				"layer", "application",
				"application_id", cmd.ApplicationID,
				"email", updated.Email,
				"error", err.Error(),
			)
			return DecideApplicationResult{}, err
		}
		result.RoleUpdated = matched > 0
		result.RoleMatched = matched
	}

	logger.Info("application decision completed",
		"event", "identity_decide_application_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"application_id", cmd.ApplicationID,
		"status", string(cmd.Status),
		"role_updated", result.RoleUpdated,
	)
	return result, nil
}
