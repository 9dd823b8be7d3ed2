package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/lending-core/order-service/application"
	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// HideForBuyerCommand soft-hides one order from the buyer's own view.
type HideForBuyerCommand struct {
	OrderID    string
	BuyerEmail string
}

// HideForBuyerUseCase sets the buyer-side visibility flag after verifying
// the caller owns the buyer side. The provider's view and the payment
// record are untouched.
type HideForBuyerUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u HideForBuyerUseCase) Execute(ctx context.Context, cmd HideForBuyerCommand) error {
	logger := application.ResolveLogger(u.Logger)

	order, found, err := u.Repository.GetOrder(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrOrderNotFound
	}
	if strings.ToLower(strings.TrimSpace(cmd.BuyerEmail)) != order.BuyerEmail {
		return domainerrors.ErrForbidden
	}

	if err := u.Repository.SetBuyerVisibility(ctx, cmd.OrderID, entities.VisibilityDeleted); err != nil {
		return err
	}

	logger.Info("order hidden for buyer",
		"event", "order_hide_buyer_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"order_id", cmd.OrderID,
	)
	return nil
}
