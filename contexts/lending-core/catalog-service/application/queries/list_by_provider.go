package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// ListByProviderQuery lists one provider's own listings.
type ListByProviderQuery struct {
	ProviderEmail string
}

// ListByProviderUseCase returns every listing owned by the verified caller.
type ListByProviderUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListByProviderUseCase) Execute(ctx context.Context, query ListByProviderQuery) ([]entities.Listing, error) {
	return u.Repository.ListByProvider(ctx, strings.ToLower(strings.TrimSpace(query.ProviderEmail)))
}
