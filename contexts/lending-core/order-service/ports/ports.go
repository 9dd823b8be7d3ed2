package ports

import (
	"context"
	"time"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts record identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ListingSnapshot is the cross-context read needed to create an order.
type ListingSnapshot struct {
	ListingID     string
	ProviderEmail string
	BookName      string
	Price         float64
	Published     bool
}

// ListingReader resolves a listing snapshot from the catalog context.
// Wired in bootstrap; tests supply a local stub.
type ListingReader interface {
	ListingSnapshot(ctx context.Context, listingID string) (ListingSnapshot, bool, error)
}

// VisibilityCount is one raw aggregation row grouped by the provider-side
// visibility flag.
type VisibilityCount struct {
	Status entities.VisibilityStatus
	Count  int64
}

// Repository is the write/read boundary for order domain state.
type Repository interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, bool, error)
	CreateOrder(ctx context.Context, order entities.Order) error
	UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus) (entities.Order, error)
	SetBuyerVisibility(ctx context.Context, orderID string, status entities.VisibilityStatus) error
	SetProviderVisibility(ctx context.Context, orderID string, status entities.VisibilityStatus) error
	MarkOrderPaid(ctx context.Context, orderID, trackingID string, paidAt time.Time) (entities.Order, error)
	CancelOrdersForListing(ctx context.Context, listingID string) (int64, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error)
	ListByProvider(ctx context.Context, providerEmail string) ([]entities.Order, error)
	CountByProviderVisibility(ctx context.Context) ([]VisibilityCount, error)
}
