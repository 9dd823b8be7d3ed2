package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// ListProviderOrdersQuery lists orders against the caller's listings.
type ListProviderOrdersQuery struct {
	ProviderEmail string
}

// ListProviderOrdersUseCase returns the provider's incoming orders,
// excluding ones the provider has hidden from their own view.
type ListProviderOrdersUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListProviderOrdersUseCase) Execute(ctx context.Context, query ListProviderOrdersQuery) ([]entities.Order, error) {
	orders, err := u.Repository.ListByProvider(ctx, strings.ToLower(strings.TrimSpace(query.ProviderEmail)))
	if err != nil {
		return nil, err
	}
	visible := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if order.LibrarianOrderStatus == entities.VisibilityDeleted {
			continue
		}
		visible = append(visible, order)
	}
	return visible, nil
}
