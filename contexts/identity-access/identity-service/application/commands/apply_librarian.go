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

// ApplyLibrarianCommand submits a provider application for the verified caller.
type ApplyLibrarianCommand struct {
	Email      string
	Name       string
	Experience string
}

// ApplyLibrarianUseCase records a pending librarian application.
// At most one application exists per email; a duplicate submission is a
// conflict and leaves the original untouched.
type ApplyLibrarianUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u ApplyLibrarianUseCase) Execute(ctx context.Context, cmd ApplyLibrarianCommand) (entities.LibrarianApplication, error) {
	logger := application.ResolveLogger(u.Logger)

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return entities.LibrarianApplication{}, domainerrors.ErrInvalidEmail
	}

	applicationID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.LibrarianApplication{}, err
	}

	candidate := entities.LibrarianApplication{
		ApplicationID: applicationID,
		Email:         email,
		Name:          strings.TrimSpace(cmd.Name),
		Experience:    strings.TrimSpace(cmd.Experience),
		Status:        entities.ApplicationPending,
		CreatedAt:     u.Clock.Now().UTC(),
	}

	created, _, err := u.Repository.InsertApplicationIfAbsent(ctx, candidate)
	if err != nil {
		logger.Error("librarian application write failed",
			"event", "identity_apply_librarian_write_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"email", email,
			"error", err.Error(),
		)
		return entities.LibrarianApplication{}, err
	}
	if !created {
		return entities.LibrarianApplication{}, domainerrors.ErrAlreadyApplied
	}

	logger.Info("librarian application submitted",
		"event", "identity_apply_librarian_completed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"email", email,
		"application_id", applicationID,
	)
	return candidate, nil
}
