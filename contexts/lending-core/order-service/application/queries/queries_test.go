package queries

import (
	"context"
	"errors"
	"testing"

	"bookcourier/contexts/lending-core/order-service/adapters/memory"
	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
)

func seedOrder(t *testing.T, store *memory.Store, orderID, buyer, provider string) {
	t.Helper()
	err := store.CreateOrder(context.Background(), entities.Order{
		OrderID:        orderID,
		ListingID:      "listing-1",
		BuyerEmail:     buyer,
		ProviderEmail:  provider,
		BookName:       "Seeded Book",
		Price:          12,
		CreatedAt:      store.Now(),
		PaymentStatus:  entities.PaymentUnpaid,
		DeliveryStatus: entities.DeliveryPending,
	})
	if err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
}

func TestListBuyerOrdersExcludesHidden(t *testing.T) {
	store := memory.NewStore()
	seedOrder(t, store, "order-1", "buyer@example.com", "provider@example.com")
	seedOrder(t, store, "order-2", "buyer@example.com", "provider@example.com")
	if err := store.SetBuyerVisibility(context.Background(), "order-2", entities.VisibilityDeleted); err != nil {
		t.Fatalf("set visibility failed: %v", err)
	}

	list := ListBuyerOrdersUseCase{Repository: store}
	orders, err := list.Execute(context.Background(), ListBuyerOrdersQuery{BuyerEmail: "buyer@example.com"})
	if err != nil {
		t.Fatalf("list buyer orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != "order-1" {
		t.Fatalf("expected only the visible order, got %+v", orders)
	}
}

func TestListProviderOrdersExcludesProviderHidden(t *testing.T) {
	store := memory.NewStore()
	seedOrder(t, store, "order-1", "buyer@example.com", "provider@example.com")
	seedOrder(t, store, "order-2", "other@example.com", "provider@example.com")
	if err := store.SetProviderVisibility(context.Background(), "order-1", entities.VisibilityDeleted); err != nil {
		t.Fatalf("set visibility failed: %v", err)
	}

	list := ListProviderOrdersUseCase{Repository: store}
	orders, err := list.Execute(context.Background(), ListProviderOrdersQuery{ProviderEmail: "provider@example.com"})
	if err != nil {
		t.Fatalf("list provider orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != "order-2" {
		t.Fatalf("expected only the visible order, got %+v", orders)
	}
}

func TestGetOrderRequiresParty(t *testing.T) {
	store := memory.NewStore()
	seedOrder(t, store, "order-1", "buyer@example.com", "provider@example.com")

	get := GetOrderUseCase{Repository: store}
	if _, err := get.Execute(context.Background(), GetOrderQuery{
		OrderID:        "order-1",
		RequesterEmail: "buyer@example.com",
	}); err != nil {
		t.Fatalf("buyer read failed: %v", err)
	}
	if _, err := get.Execute(context.Background(), GetOrderQuery{
		OrderID:        "order-1",
		RequesterEmail: "stranger@example.com",
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-party, got %v", err)
	}
}

func TestCountByProviderVisibilityBuckets(t *testing.T) {
	store := memory.NewStore()
	seedOrder(t, store, "order-1", "a@example.com", "provider@example.com")
	seedOrder(t, store, "order-2", "b@example.com", "provider@example.com")
	seedOrder(t, store, "order-3", "c@example.com", "provider@example.com")
	if err := store.SetProviderVisibility(context.Background(), "order-3", entities.VisibilityDeleted); err != nil {
		t.Fatalf("set visibility failed: %v", err)
	}

	stats := CountByProviderVisibilityUseCase{Repository: store}
	buckets, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	want := map[string]int64{
		LabelActiveOrders:            2,
		LabelProviderCancelledOrders: 1,
	}
	if len(buckets) != len(want) {
		t.Fatalf("unexpected bucket count %d: %+v", len(buckets), buckets)
	}
	for _, bucket := range buckets {
		if want[bucket.Label] != bucket.Count {
			t.Fatalf("bucket %s = %d, want %d", bucket.Label, bucket.Count, want[bucket.Label])
		}
	}
}

func TestCountByProviderVisibilityEmptyStore(t *testing.T) {
	store := memory.NewStore()
	stats := CountByProviderVisibilityUseCase{Repository: store}
	buckets, err := stats.Execute(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected no buckets for empty store, got %+v", buckets)
	}
}
