package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// ListApplicationsQuery narrows applications by status when set.
type ListApplicationsQuery struct {
	Status entities.ApplicationStatus
}

// ListApplicationsUseCase lists librarian applications for review.
type ListApplicationsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListApplicationsUseCase) Execute(ctx context.Context, query ListApplicationsQuery) ([]entities.LibrarianApplication, error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrInvalidApplicationStatus
	}
	return u.Repository.ListApplications(ctx, ports.ApplicationFilter{Status: query.Status})
}
