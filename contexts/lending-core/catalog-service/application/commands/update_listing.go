package commands

import (
	"context"
	"log/slog"

	application "bookcourier/contexts/lending-core/catalog-service/application"
	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// UpdateListingCommand patches a listing's descriptive fields.
type UpdateListingCommand struct {
	ListingID  string
	ActorEmail string
	ActorAdmin bool
	Update     ports.ListingUpdate
}

// UpdateListingUseCase edits a listing after verifying the caller owns it
// or is an admin.
type UpdateListingUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u UpdateListingUseCase) Execute(ctx context.Context, cmd UpdateListingCommand) (entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	current, found, err := u.Repository.GetListing(ctx, cmd.ListingID)
	if err != nil {
		return entities.Listing{}, err
	}
	if !found {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	if !cmd.ActorAdmin && current.ProviderEmail != cmd.ActorEmail {
		return entities.Listing{}, domainerrors.ErrForbidden
	}
	if cmd.Update.Price != nil && *cmd.Update.Price < 0 {
		return entities.Listing{}, domainerrors.ErrInvalidPrice
	}

	updated, err := u.Repository.UpdateListing(ctx, cmd.ListingID, cmd.Update)
	if err != nil {
		logger.Error("listing update failed",
			"event", "catalog_update_listing_failed",
			"module", "lending-core/catalog-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"error", err.Error(),
		)
		return entities.Listing{}, err
	}

	logger.Info("listing updated",
		"event", "catalog_update_listing_completed",
		"module", "lending-core/catalog-service",
		"layer", "application",
		"listing_id", cmd.ListingID,
	)
	return updated, nil
}
