package unit

import (
	"context"
	"errors"
	"testing"

	catalog "bookcourier/contexts/lending-core/catalog-service"
	catalogmemory "bookcourier/contexts/lending-core/catalog-service/adapters/memory"
	catalogentities "bookcourier/contexts/lending-core/catalog-service/domain/entities"
	cataloghttp "bookcourier/contexts/lending-core/catalog-service/transport/http"
	order "bookcourier/contexts/lending-core/order-service"
	ordererrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	orderports "bookcourier/contexts/lending-core/order-service/ports"
	orderhttp "bookcourier/contexts/lending-core/order-service/transport/http"
	payment "bookcourier/contexts/lending-core/payment-service"
	paymenthttp "bookcourier/contexts/lending-core/payment-service/transport/http"
)

// catalogListingReader mirrors the production bridge between the catalog
// repository and the order context's read port.
type catalogListingReader struct {
	store *catalogmemory.Store
}

func (r catalogListingReader) ListingSnapshot(ctx context.Context, listingID string) (orderports.ListingSnapshot, bool, error) {
	listing, found, err := r.store.GetListing(ctx, listingID)
	if err != nil || !found {
		return orderports.ListingSnapshot{}, false, err
	}
	return orderports.ListingSnapshot{
		ListingID:     listing.ListingID,
		ProviderEmail: listing.ProviderEmail,
		BookName:      listing.BookName,
		Price:         listing.Price,
		Published:     listing.BookStatus == catalogentities.BookPublished,
	}, true, nil
}

type lendingModules struct {
	catalog  catalog.Module
	orders   order.Module
	payments payment.Module
}

func newLendingModules() lendingModules {
	catalogStore := catalogmemory.NewStore()
	orderModule := order.NewInMemoryModule(catalogListingReader{store: catalogStore}, nil)
	catalogModule := catalog.NewModule(catalog.Dependencies{
		Repository:  catalogStore,
		Orders:      orderModule.CascadeCancel,
		Clock:       catalogStore,
		IDGenerator: catalogStore,
	})
	paymentModule := payment.NewInMemoryModule(orderModule.MarkPaid, nil)
	return lendingModules{
		catalog:  catalogModule,
		orders:   orderModule,
		payments: paymentModule,
	}
}

func publishListing(t *testing.T, m lendingModules) cataloghttp.ListingDTO {
	t.Helper()
	listing, err := m.catalog.Handler.CreateListingHandler(context.Background(), "provider@example.com", cataloghttp.CreateListingRequest{
		BookName:   "Distributed Systems",
		Price:      42,
		BookStatus: string(catalogentities.BookPublished),
	})
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}
	return listing
}

func placeOrder(t *testing.T, m lendingModules, listingID string) orderhttp.OrderDTO {
	t.Helper()
	resp, err := m.orders.Handler.CreateOrderHandler(context.Background(), "buyer@example.com", orderhttp.CreateOrderRequest{
		ListingID: listingID,
		Address:   "12 Library Lane",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !resp.Available || resp.Order == nil {
		t.Fatalf("expected orderable listing, got %+v", resp)
	}
	return *resp.Order
}

func TestCheckoutSettlementFlow(t *testing.T) {
	m := newLendingModules()
	ctx := context.Background()

	listing := publishListing(t, m)
	placed := placeOrder(t, m, listing.ListingID)

	session, err := m.payments.Handler.CreateSessionHandler(ctx, "buyer@example.com", paymenthttp.CreateCheckoutSessionRequest{
		OrderID:  placed.OrderID,
		BookName: placed.BookName,
		Price:    placed.Price,
	})
	if err != nil {
		t.Fatalf("create checkout session failed: %v", err)
	}
	m.payments.Gateway.SettleSession(session.SessionID, "pi_flow_1")

	confirmed, err := m.payments.Handler.ConfirmPaymentHandler(ctx, session.SessionID, "buyer@example.com")
	if err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}
	if !confirmed.Paid || confirmed.AlreadyProcessed {
		t.Fatalf("expected fresh settled confirmation, got %+v", confirmed)
	}

	paid, err := m.orders.Handler.GetOrderHandler(ctx, placed.OrderID, "buyer@example.com")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if paid.PaymentStatus != "paid" || paid.DeliveryStatus != "awaiting_pickup" {
		t.Fatalf("expected paid/awaiting_pickup, got %s/%s", paid.PaymentStatus, paid.DeliveryStatus)
	}
	if paid.TrackingID != confirmed.Payment.TrackingID {
		t.Fatalf("order tracking %q must match payment tracking %q", paid.TrackingID, confirmed.Payment.TrackingID)
	}

	replay, err := m.payments.Handler.ConfirmPaymentHandler(ctx, session.SessionID, "buyer@example.com")
	if err != nil {
		t.Fatalf("replayed confirm failed: %v", err)
	}
	if !replay.AlreadyProcessed {
		t.Fatal("expected replay to report already processed")
	}
	if replay.Payment.TrackingID != confirmed.Payment.TrackingID {
		t.Fatalf("replay must return the recorded payment, tracking %q vs %q",
			replay.Payment.TrackingID, confirmed.Payment.TrackingID)
	}

	history, err := m.payments.Handler.ListPaymentsHandler(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("payment history failed: %v", err)
	}
	if len(history.Payments) != 1 {
		t.Fatalf("expected one payment across replays, got %d", len(history.Payments))
	}
}

func TestUnpublishCascadeOverridesDeliveredOrder(t *testing.T) {
	m := newLendingModules()
	ctx := context.Background()

	listing := publishListing(t, m)
	placed := placeOrder(t, m, listing.ListingID)

	for _, target := range []string{"awaiting_pickup", "delivered"} {
		if _, err := m.orders.Handler.TransitionDeliveryHandler(ctx, placed.OrderID, "provider@example.com", false, target); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}

	withdrawn, err := m.catalog.Handler.ChangeStatusHandler(ctx, listing.ListingID, cataloghttp.ChangeListingStatusRequest{
		BookStatus: string(catalogentities.BookUnpublished),
	})
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if withdrawn.OrdersCancelled != 1 {
		t.Fatalf("expected one cascaded cancellation, got %d", withdrawn.OrdersCancelled)
	}

	cancelled, err := m.orders.Handler.GetOrderHandler(ctx, placed.OrderID, "buyer@example.com")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if cancelled.DeliveryStatus != "cancelled_refund" {
		t.Fatalf("cascade must override delivered, got %s", cancelled.DeliveryStatus)
	}
}

func TestDeleteListingCascadesThenRemovesListing(t *testing.T) {
	m := newLendingModules()
	ctx := context.Background()

	listing := publishListing(t, m)
	placed := placeOrder(t, m, listing.ListingID)

	deleted, err := m.catalog.Handler.DeleteListingHandler(ctx, listing.ListingID)
	if err != nil {
		t.Fatalf("delete listing failed: %v", err)
	}
	if !deleted.Deleted || deleted.OrdersCancelled != 1 {
		t.Fatalf("unexpected delete result %+v", deleted)
	}

	orphaned, err := m.orders.Handler.GetOrderHandler(ctx, placed.OrderID, "buyer@example.com")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if orphaned.DeliveryStatus != "cancelled_refund" {
		t.Fatalf("expected cancelled_refund after delete cascade, got %s", orphaned.DeliveryStatus)
	}

	_, err = m.orders.Handler.CreateOrderHandler(ctx, "buyer@example.com", orderhttp.CreateOrderRequest{
		ListingID: listing.ListingID,
	})
	if !errors.Is(err, ordererrors.ErrListingNotFound) {
		t.Fatalf("expected listing not found after delete, got %v", err)
	}
}

func TestHiddenOrdersStayVisibleToOtherParty(t *testing.T) {
	m := newLendingModules()
	ctx := context.Background()

	listing := publishListing(t, m)
	placed := placeOrder(t, m, listing.ListingID)

	if _, err := m.orders.Handler.HideForBuyerHandler(ctx, placed.OrderID, "buyer@example.com"); err != nil {
		t.Fatalf("hide for buyer failed: %v", err)
	}

	buyerView, err := m.orders.Handler.ListBuyerOrdersHandler(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("buyer list failed: %v", err)
	}
	if len(buyerView.Orders) != 0 {
		t.Fatalf("buyer must not see hidden order, got %d", len(buyerView.Orders))
	}

	providerView, err := m.orders.Handler.ListProviderOrdersHandler(ctx, "provider@example.com")
	if err != nil {
		t.Fatalf("provider list failed: %v", err)
	}
	if len(providerView.Orders) != 1 {
		t.Fatalf("provider must still see the order, got %d", len(providerView.Orders))
	}
}
