package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// GetOrderQuery fetches one order for its buyer (the payment page read).
type GetOrderQuery struct {
	OrderID        string
	RequesterEmail string
}

// GetOrderUseCase returns an order after verifying the requester is a
// party to it.
type GetOrderUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (entities.Order, error) {
	order, found, err := u.Repository.GetOrder(ctx, query.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	requester := strings.ToLower(strings.TrimSpace(query.RequesterEmail))
	if requester != order.BuyerEmail && requester != order.ProviderEmail {
		return entities.Order{}, domainerrors.ErrForbidden
	}
	return order, nil
}
