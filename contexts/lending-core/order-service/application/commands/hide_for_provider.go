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

// HideForProviderCommand soft-hides one order from the provider's own view.
type HideForProviderCommand struct {
	OrderID       string
	ProviderEmail string
}

// HideForProviderUseCase sets the provider-side visibility flag after
// verifying the caller owns the provider side. The buyer's view and the
// payment record are untouched.
type HideForProviderUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u HideForProviderUseCase) Execute(ctx context.Context, cmd HideForProviderCommand) error {
	logger := application.ResolveLogger(u.Logger)

	order, found, err := u.Repository.GetOrder(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrOrderNotFound
	}
	if strings.ToLower(strings.TrimSpace(cmd.ProviderEmail)) != order.ProviderEmail {
		return domainerrors.ErrForbidden
	}

	if err := u.Repository.SetProviderVisibility(ctx, cmd.OrderID, entities.VisibilityDeleted); err != nil {
		return err
	}

	logger.Info("order hidden for provider",
		"event", "order_hide_provider_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"order_id", cmd.OrderID,
	)
	return nil
}
