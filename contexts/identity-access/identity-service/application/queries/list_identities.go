package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// ListIdentitiesUseCase returns every stored identity, newest first.
type ListIdentitiesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListIdentitiesUseCase) Execute(ctx context.Context) ([]entities.Identity, error) {
	return u.Repository.ListIdentities(ctx)
}
