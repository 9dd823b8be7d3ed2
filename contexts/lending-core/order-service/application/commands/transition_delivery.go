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

// TransitionDeliveryCommand drives one delivery-status edge.
// ActorEmail is the verified caller email; ActorAdmin its resolved admin bit.
type TransitionDeliveryCommand struct {
	OrderID    string
	Target     entities.DeliveryStatus
	ActorEmail string
	ActorAdmin bool
}

// TransitionDeliveryUseCase enforces the delivery FSM centrally.
// Edge ownership: forward edges and cancelled_by_provider belong to the
// order's provider (or an admin); cancelled_self belongs to the buyer;
// cancelled_refund is cascade-only and always rejected here.
type TransitionDeliveryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u TransitionDeliveryUseCase) Execute(ctx context.Context, cmd TransitionDeliveryCommand) (entities.Order, error) {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Target.IsValid() || cmd.Target == entities.DeliveryCancelledRefund {
		return entities.Order{}, domainerrors.ErrInvalidTransition
	}

	order, found, err := u.Repository.GetOrder(ctx, cmd.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}

	if !entities.CanTransition(order.DeliveryStatus, cmd.Target) {
		logger.Warn("delivery transition rejected",
			"event", "order_transition_rejected",
			"module", "lending-core/order-service",
			"layer", "application",
			"order_id", cmd.OrderID,
			"from", string(order.DeliveryStatus),
			"to", string(cmd.Target),
		)
		return entities.Order{}, domainerrors.ErrInvalidTransition
	}

	actor := strings.ToLower(strings.TrimSpace(cmd.ActorEmail))
	switch cmd.Target {
	case entities.DeliveryCancelledSelf:
		if actor != order.BuyerEmail {
			return entities.Order{}, domainerrors.ErrForbidden
		}
	default:
		// awaiting_pickup, delivered, cancelled_by_provider
		if !cmd.ActorAdmin && actor != order.ProviderEmail {
			return entities.Order{}, domainerrors.ErrForbidden
		}
	}

	updated, err := u.Repository.UpdateDeliveryStatus(ctx, cmd.OrderID, cmd.Target)
	if err != nil {
		logger.Error("delivery transition write failed",
			"event", "order_transition_write_failed",
			"module", "lending-core/order-service",
			"layer", "application",
			"order_id", cmd.OrderID,
			"to", string(cmd.Target),
			"error", err.Error(),
		)
		return entities.Order{}, err
	}

	logger.Info("delivery transition completed",
		"event", "order_transition_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"order_id", cmd.OrderID,
		"from", string(order.DeliveryStatus),
		"to", string(cmd.Target),
	)
	return updated, nil
}
