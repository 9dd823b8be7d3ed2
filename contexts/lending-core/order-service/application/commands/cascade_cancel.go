package commands

import (
	"context"
	"log/slog"

	application "bookcourier/contexts/lending-core/order-service/application"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// CascadeCancelUseCase bulk-cancels every order referencing a withdrawn or
// deleted listing, unconditionally overriding the current delivery status —
// including terminal ones: a withdrawn listing voids any in-flight
// fulfillment. Refund handling is driven downstream by observing
// cancelled_refund. The catalog service reaches this through its
// OrderCanceller port, which this use case satisfies structurally.
type CascadeCancelUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u CascadeCancelUseCase) CancelOrdersForListing(ctx context.Context, listingID string) (int64, error) {
	logger := application.ResolveLogger(u.Logger)

	cancelled, err := u.Repository.CancelOrdersForListing(ctx, listingID)
	if err != nil {
		logger.Error("cascade cancellation failed",
			"event", "order_cascade_cancel_failed",
			"module", "lending-core/order-service",
			"layer", "application",
			"listing_id", listingID,
			"error", err.Error(),
		)
		return 0, err
	}

	logger.Info("cascade cancellation completed",
		"event", "order_cascade_cancel_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"listing_id", listingID,
		"orders_cancelled", cancelled,
	)
	return cancelled, nil
}
