package commands

import (
	"context"
	"errors"
	"testing"

	"bookcourier/contexts/lending-core/order-service/adapters/memory"
	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	"bookcourier/contexts/lending-core/order-service/ports"
)

type stubListingReader struct {
	listings map[string]ports.ListingSnapshot
}

func (r stubListingReader) ListingSnapshot(_ context.Context, listingID string) (ports.ListingSnapshot, bool, error) {
	snapshot, ok := r.listings[listingID]
	return snapshot, ok, nil
}

func newReader() stubListingReader {
	return stubListingReader{listings: map[string]ports.ListingSnapshot{
		"listing-1": {
			ListingID:     "listing-1",
			ProviderEmail: "provider@example.com",
			BookName:      "The Go Programming Language",
			Price:         35.50,
			Published:     true,
		},
		"listing-draft": {
			ListingID:     "listing-draft",
			ProviderEmail: "provider@example.com",
			BookName:      "Unreleased Draft",
			Price:         10,
			Published:     false,
		},
	}}
}

func placeOrder(t *testing.T, store *memory.Store) entities.Order {
	t.Helper()
	create := CreateOrderUseCase{
		Repository:  store,
		Listings:    newReader(),
		Clock:       store,
		IDGenerator: store,
	}
	result, err := create.Execute(context.Background(), CreateOrderCommand{
		ListingID:  "listing-1",
		BuyerEmail: "buyer@example.com",
		Address:    "12 Library Lane",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !result.Available {
		t.Fatal("expected published listing to be orderable")
	}
	return result.Order
}

func TestCreateOrderSnapshotsListing(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	if order.BookName != "The Go Programming Language" {
		t.Fatalf("unexpected snapshotted book name %q", order.BookName)
	}
	if order.Price != 35.50 {
		t.Fatalf("unexpected snapshotted price %v", order.Price)
	}
	if order.ProviderEmail != "provider@example.com" {
		t.Fatalf("unexpected snapshotted provider %q", order.ProviderEmail)
	}
	if order.PaymentStatus != entities.PaymentUnpaid || order.DeliveryStatus != entities.DeliveryPending {
		t.Fatalf("unexpected initial state %s/%s", order.PaymentStatus, order.DeliveryStatus)
	}
}

func TestCreateOrderMissingListing(t *testing.T) {
	store := memory.NewStore()
	create := CreateOrderUseCase{
		Repository:  store,
		Listings:    newReader(),
		Clock:       store,
		IDGenerator: store,
	}
	_, err := create.Execute(context.Background(), CreateOrderCommand{
		ListingID:  "listing-missing",
		BuyerEmail: "buyer@example.com",
	})
	if !errors.Is(err, domainerrors.ErrListingNotFound) {
		t.Fatalf("expected listing not found, got %v", err)
	}
}

func TestCreateOrderUnpublishedListingWritesNothing(t *testing.T) {
	store := memory.NewStore()
	create := CreateOrderUseCase{
		Repository:  store,
		Listings:    newReader(),
		Clock:       store,
		IDGenerator: store,
	}
	result, err := create.Execute(context.Background(), CreateOrderCommand{
		ListingID:  "listing-draft",
		BuyerEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("unpublished listing must not be an error: %v", err)
	}
	if result.Available {
		t.Fatal("expected unavailable result for unpublished listing")
	}
	orders, err := store.ListByBuyer(context.Background(), "buyer@example.com")
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no order written, got %d", len(orders))
	}
}

func TestTransitionDeliveryProviderForward(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	updated, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryAwaitingPickup,
		ActorEmail: "provider@example.com",
	})
	if err != nil {
		t.Fatalf("provider forward transition failed: %v", err)
	}
	if updated.DeliveryStatus != entities.DeliveryAwaitingPickup {
		t.Fatalf("unexpected status %s", updated.DeliveryStatus)
	}
}

func TestTransitionDeliveryBuyerCannotMoveForward(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	_, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryAwaitingPickup,
		ActorEmail: "buyer@example.com",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	stored, _, _ := store.GetOrder(context.Background(), order.OrderID)
	if stored.DeliveryStatus != entities.DeliveryPending {
		t.Fatalf("rejected transition must leave order unchanged, got %s", stored.DeliveryStatus)
	}
}

func TestTransitionDeliveryBuyerSelfCancel(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	updated, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryCancelledSelf,
		ActorEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("buyer self-cancel failed: %v", err)
	}
	if updated.DeliveryStatus != entities.DeliveryCancelledSelf {
		t.Fatalf("unexpected status %s", updated.DeliveryStatus)
	}
}

func TestTransitionDeliverySelfCancelOwnershipEnforced(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	_, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryCancelledSelf,
		ActorEmail: "someone-else@example.com",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestTransitionDeliveryAdminOverride(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	updated, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryCancelledByProvider,
		ActorEmail: "admin@example.com",
		ActorAdmin: true,
	})
	if err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
	if updated.DeliveryStatus != entities.DeliveryCancelledByProvider {
		t.Fatalf("unexpected status %s", updated.DeliveryStatus)
	}
}

func TestTransitionDeliveryRefundTargetRejected(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	_, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryCancelledRefund,
		ActorEmail: "provider@example.com",
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestTransitionDeliveryFromTerminalRejected(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	mustTransition := func(target entities.DeliveryStatus) {
		t.Helper()
		if _, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
			OrderID:    order.OrderID,
			Target:     target,
			ActorEmail: "provider@example.com",
		}); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}
	mustTransition(entities.DeliveryAwaitingPickup)
	mustTransition(entities.DeliveryDelivered)

	_, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
		OrderID:    order.OrderID,
		Target:     entities.DeliveryAwaitingPickup,
		ActorEmail: "provider@example.com",
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition from delivered, got %v", err)
	}
}

func TestHideForBuyerLeavesProviderViewIntact(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	hide := HideForBuyerUseCase{Repository: store}
	if err := hide.Execute(context.Background(), HideForBuyerCommand{
		OrderID:    order.OrderID,
		BuyerEmail: "buyer@example.com",
	}); err != nil {
		t.Fatalf("hide for buyer failed: %v", err)
	}

	stored, _, _ := store.GetOrder(context.Background(), order.OrderID)
	if stored.UserOrderStatus != entities.VisibilityDeleted {
		t.Fatalf("expected buyer-side flag set, got %q", stored.UserOrderStatus)
	}
	if stored.LibrarianOrderStatus != entities.VisibilityVisible {
		t.Fatalf("provider-side flag must be untouched, got %q", stored.LibrarianOrderStatus)
	}
}

func TestHideForProviderOwnershipEnforced(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	hide := HideForProviderUseCase{Repository: store}
	err := hide.Execute(context.Background(), HideForProviderCommand{
		OrderID:       order.OrderID,
		ProviderEmail: "other-provider@example.com",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCascadeCancelOverridesDelivered(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	transition := TransitionDeliveryUseCase{Repository: store}
	for _, target := range []entities.DeliveryStatus{entities.DeliveryAwaitingPickup, entities.DeliveryDelivered} {
		if _, err := transition.Execute(context.Background(), TransitionDeliveryCommand{
			OrderID:    order.OrderID,
			Target:     target,
			ActorEmail: "provider@example.com",
		}); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}

	cascade := CascadeCancelUseCase{Repository: store}
	cancelled, err := cascade.CancelOrdersForListing(context.Background(), "listing-1")
	if err != nil {
		t.Fatalf("cascade cancel failed: %v", err)
	}
	if cancelled != 1 {
		t.Fatalf("expected 1 cancelled order, got %d", cancelled)
	}

	stored, _, _ := store.GetOrder(context.Background(), order.OrderID)
	if stored.DeliveryStatus != entities.DeliveryCancelledRefund {
		t.Fatalf("cascade must override delivered, got %s", stored.DeliveryStatus)
	}
}

func TestMarkPaidAppliesPaymentSideEffects(t *testing.T) {
	store := memory.NewStore()
	order := placeOrder(t, store)

	markPaid := MarkOrderPaidUseCase{Repository: store}
	if err := markPaid.MarkPaid(context.Background(), order.OrderID, "TRK-20250102-0001", store.Now()); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	stored, _, _ := store.GetOrder(context.Background(), order.OrderID)
	if stored.PaymentStatus != entities.PaymentPaid {
		t.Fatalf("expected paid, got %s", stored.PaymentStatus)
	}
	if stored.DeliveryStatus != entities.DeliveryAwaitingPickup {
		t.Fatalf("expected awaiting_pickup, got %s", stored.DeliveryStatus)
	}
	if stored.TrackingID != "TRK-20250102-0001" {
		t.Fatalf("unexpected tracking id %q", stored.TrackingID)
	}
}
