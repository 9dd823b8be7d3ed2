package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// ListAllUseCase returns every listing for the admin review view.
type ListAllUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListAllUseCase) Execute(ctx context.Context) ([]entities.Listing, error) {
	return u.Repository.ListAll(ctx)
}
