package ports

import (
	"context"
	"time"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts record identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OrderCanceller propagates a listing withdrawal into bulk cancellation of
// its outstanding orders. Implemented by the order service, wired in
// bootstrap; returns the number of orders cancelled.
type OrderCanceller interface {
	CancelOrdersForListing(ctx context.Context, listingID string) (int64, error)
}

// ListingUpdate carries the patchable descriptive fields; nil means keep.
type ListingUpdate struct {
	BookName    *string
	Author      *string
	ImageURL    *string
	Description *string
	Price       *float64
}

// Repository is the write/read boundary for catalog domain state.
type Repository interface {
	GetListing(ctx context.Context, listingID string) (entities.Listing, bool, error)
	CreateListing(ctx context.Context, listing entities.Listing) error
	UpdateListing(ctx context.Context, listingID string, update ListingUpdate) (entities.Listing, error)
	UpdateListingStatus(ctx context.Context, listingID string, status entities.BookStatus) (entities.Listing, error)
	DeleteListing(ctx context.Context, listingID string) error
	ListByStatus(ctx context.Context, status entities.BookStatus) ([]entities.Listing, error)
	ListByProvider(ctx context.Context, providerEmail string) ([]entities.Listing, error)
	ListAll(ctx context.Context) ([]entities.Listing, error)
}
