package commands

import (
	"context"
	"log/slog"

	application "bookcourier/contexts/lending-core/catalog-service/application"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// DeleteListingCommand removes a listing and cancels its outstanding orders.
// Admin-gated at the boundary.
type DeleteListingCommand struct {
	ListingID string
}

// DeleteListingResult reports the cascade size back to the caller.
type DeleteListingResult struct {
	Deleted         bool  `json:"deleted"`
	OrdersCancelled int64 `json:"orders_cancelled"`
}

// DeleteListingUseCase runs the cancellation cascade first and only then
// deletes the listing row. A crash between the two writes leaves the
// listing visible with its orders already cancelled; re-running the delete
// repeats the (idempotent) cascade and closes the window.
type DeleteListingUseCase struct {
	Repository ports.Repository
	Orders     ports.OrderCanceller
	Logger     *slog.Logger
}

func (u DeleteListingUseCase) Execute(ctx context.Context, cmd DeleteListingCommand) (DeleteListingResult, error) {
	logger := application.ResolveLogger(u.Logger)

	_, found, err := u.Repository.GetListing(ctx, cmd.ListingID)
	if err != nil {
		return DeleteListingResult{}, err
	}
	if !found {
		return DeleteListingResult{}, domainerrors.ErrListingNotFound
	}

	cancelled, err := u.Orders.CancelOrdersForListing(ctx, cmd.ListingID)
	if err != nil {
		logger.Error("deletion cascade failed, listing kept",
			"event", "catalog_delete_cascade_failed",
			"module", "lending-core/catalog-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"error", err.Error(),
		)
		return DeleteListingResult{}, err
	}

	if err := u.Repository.DeleteListing(ctx, cmd.ListingID); err != nil {
		logger.Error("listing delete failed after cascade",
			"event", "catalog_delete_listing_failed",
			"module", "lending-core/catalog-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"orders_cancelled", cancelled,
			"error", err.Error(),
		)
		return DeleteListingResult{}, err
	}

	logger.Info("listing delete completed",
		"event", "catalog_delete_listing_completed",
		"module", "lending-core/catalog-service",
		"layer", "application",
		"listing_id", cmd.ListingID,
		"orders_cancelled", cancelled,
	)
	return DeleteListingResult{Deleted: true, OrdersCancelled: cancelled}, nil
}
