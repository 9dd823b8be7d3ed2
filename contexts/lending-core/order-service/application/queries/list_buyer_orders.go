package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// ListBuyerOrdersQuery lists the verified caller's own orders.
type ListBuyerOrdersQuery struct {
	BuyerEmail string
}

// ListBuyerOrdersUseCase returns the buyer's orders, excluding ones the
// buyer has hidden from their own view.
type ListBuyerOrdersUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListBuyerOrdersUseCase) Execute(ctx context.Context, query ListBuyerOrdersQuery) ([]entities.Order, error) {
	orders, err := u.Repository.ListByBuyer(ctx, strings.ToLower(strings.TrimSpace(query.BuyerEmail)))
	if err != nil {
		return nil, err
	}
	visible := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if order.UserOrderStatus == entities.VisibilityDeleted {
			continue
		}
		visible = append(visible, order)
	}
	return visible, nil
}
