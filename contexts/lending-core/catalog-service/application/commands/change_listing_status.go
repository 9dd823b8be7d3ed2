package commands

import (
	"context"
	"log/slog"

	application "bookcourier/contexts/lending-core/catalog-service/application"
	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// ChangeListingStatusCommand mutates a listing's publication status.
// Admin-gated at the boundary.
type ChangeListingStatusCommand struct {
	ListingID string
	Status    entities.BookStatus
}

// ChangeListingStatusResult reports the updated listing and how many
// outstanding orders the withdrawal cascade cancelled.
type ChangeListingStatusResult struct {
	Listing         entities.Listing `json:"listing"`
	OrdersCancelled int64            `json:"orders_cancelled"`
}

// ChangeListingStatusUseCase updates the status and, on withdrawal, cancels
// every outstanding order for the listing through the cascade port.
type ChangeListingStatusUseCase struct {
	Repository ports.Repository
	Orders     ports.OrderCanceller
	Logger     *slog.Logger
}

func (u ChangeListingStatusUseCase) Execute(ctx context.Context, cmd ChangeListingStatusCommand) (ChangeListingStatusResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Status.IsValid() {
		return ChangeListingStatusResult{}, domainerrors.ErrInvalidListingStatus
	}

	updated, err := u.Repository.UpdateListingStatus(ctx, cmd.ListingID, cmd.Status)
	if err != nil {
		logger.Error("listing status change failed",
			"event", "catalog_change_status_failed",
			"module", "lending-core/catalog-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"status", string(cmd.Status),
			"error", err.Error(),
		)
		return ChangeListingStatusResult{}, err
	}

	result := ChangeListingStatusResult{Listing: updated}
	if cmd.Status == entities.BookUnpublished {
		cancelled, err := u.Orders.CancelOrdersForListing(ctx, cmd.ListingID)
		if err != nil {
			// The status change already landed; the cascade failure is
			// surfaced so the caller can retry, which is idempotent.
			logger.Error("withdrawal cascade failed after status change",
				"event", "catalog_withdrawal_cascade_failed",
				"module", "lending-core/catalog-service",
				"layer", "application",
				"listing_id", cmd.ListingID,
				"error", err.Error(),
			)
			return ChangeListingStatusResult{}, err
		}
		result.OrdersCancelled = cancelled
	}

	logger.Info("listing status change completed",
		"event", "catalog_change_status_completed",
		"module", "lending-core/catalog-service",
		"layer", "application",
		"listing_id", cmd.ListingID,
		"status", string(cmd.Status),
		"orders_cancelled", result.OrdersCancelled,
	)
	return result, nil
}
