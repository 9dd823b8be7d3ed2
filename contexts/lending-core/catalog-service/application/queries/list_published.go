package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// ListPublishedUseCase returns the browsable storefront listings.
type ListPublishedUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListPublishedUseCase) Execute(ctx context.Context) ([]entities.Listing, error) {
	return u.Repository.ListByStatus(ctx, entities.BookPublished)
}
