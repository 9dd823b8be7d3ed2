package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// GetListingQuery fetches one listing by id.
type GetListingQuery struct {
	ListingID string
}

// GetListingUseCase returns a listing or NotFound.
type GetListingUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetListingUseCase) Execute(ctx context.Context, query GetListingQuery) (entities.Listing, error) {
	listing, found, err := u.Repository.GetListing(ctx, query.ListingID)
	if err != nil {
		return entities.Listing{}, err
	}
	if !found {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return listing, nil
}
