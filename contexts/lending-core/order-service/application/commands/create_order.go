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

// CreateOrderCommand contains transport-agnostic input for order creation.
// BuyerEmail is always the verified caller email.
type CreateOrderCommand struct {
	ListingID  string
	BuyerEmail string
	Address    string
}

// CreateOrderResult reports the stored order, or Available=false when the
// listing exists but is not published (a business rejection, not a failure).
type CreateOrderResult struct {
	Order     entities.Order `json:"order"`
	Available bool           `json:"available"`
}

// CreateOrderUseCase creates an order against a published listing,
// snapshotting book name, price, and provider at creation time.
type CreateOrderUseCase struct {
	Repository  ports.Repository
	Listings    ports.ListingReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	logger := application.ResolveLogger(u.Logger)

	buyerEmail := strings.ToLower(strings.TrimSpace(cmd.BuyerEmail))
	if buyerEmail == "" || strings.TrimSpace(cmd.ListingID) == "" {
		return CreateOrderResult{}, domainerrors.ErrInvalidOrder
	}

	snapshot, found, err := u.Listings.ListingSnapshot(ctx, cmd.ListingID)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !found {
		return CreateOrderResult{}, domainerrors.ErrListingNotFound
	}
	if !snapshot.Published {
		logger.Info("order rejected, listing not published",
			"event", "order_create_unavailable",
			"module", "lending-core/order-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"buyer_email", buyerEmail,
		)
		return CreateOrderResult{Available: false}, nil
	}

	orderID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	order := entities.Order{
		OrderID:        orderID,
		ListingID:      cmd.ListingID,
		BuyerEmail:     buyerEmail,
		ProviderEmail:  snapshot.ProviderEmail,
		Address:        strings.TrimSpace(cmd.Address),
		BookName:       snapshot.BookName,
		Price:          snapshot.Price,
		CreatedAt:      u.Clock.Now().UTC(),
		PaymentStatus:  entities.PaymentUnpaid,
		DeliveryStatus: entities.DeliveryPending,
	}

	if err := u.Repository.CreateOrder(ctx, order); err != nil {
		logger.Error("order create write failed",
			"event", "order_create_write_failed",
			"module", "lending-core/order-service",
			"layer", "application",
			"listing_id", cmd.ListingID,
			"buyer_email", buyerEmail,
			"error", err.Error(),
		)
		return CreateOrderResult{}, err
	}

	logger.Info("order created",
		"event", "order_create_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"order_id", orderID,
		"listing_id", cmd.ListingID,
		"buyer_email", buyerEmail,
	)
	return CreateOrderResult{Order: order, Available: true}, nil
}
