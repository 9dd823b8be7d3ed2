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

// RegisterIdentityCommand contains transport-agnostic input for self-registration.
type RegisterIdentityCommand struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

// RegisterIdentityResult reports the stored identity and whether this call created it.
type RegisterIdentityResult struct {
	Identity entities.Identity `json:"identity"`
	Created  bool              `json:"created"`
}

// RegisterIdentityUseCase creates an identity on first registration.
// The role is always forced to user; repeated registration with the same
// email is an idempotent read of the existing record.
type RegisterIdentityUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RegisterIdentityUseCase) Execute(ctx context.Context, cmd RegisterIdentityCommand) (RegisterIdentityResult, error) {
	logger := application.ResolveLogger(u.Logger)

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || !strings.Contains(email, "@") {
		return RegisterIdentityResult{}, domainerrors.ErrInvalidEmail
	}

	identityID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RegisterIdentityResult{}, err
	}

	candidate := entities.Identity{
		IdentityID:  identityID,
		Email:       email,
		DisplayName: strings.TrimSpace(cmd.DisplayName),
		PhotoURL:    strings.TrimSpace(cmd.PhotoURL),
		Role:        entities.RoleUser,
		CreatedAt:   u.Clock.Now().UTC(),
	}

	created, stored, err := u.Repository.InsertIdentityIfAbsent(ctx, candidate)
	if err != nil {
		logger.Error("identity registration write failed",
			"event", "identity_register_write_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"email", email,
			"error", err.Error(),
		)
		return RegisterIdentityResult{}, err
	}

	logger.Info("identity registration completed",
		"event", "identity_register_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"email", email,
		"created", created,
	)
	return RegisterIdentityResult{Identity: stored, Created: created}, nil
}
