package commands

import (
	"context"
	"errors"
	"testing"

	"bookcourier/contexts/lending-core/catalog-service/adapters/memory"
	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

type countingCanceller struct {
	listingIDs []string
	cancelled  int64
}

func (c *countingCanceller) CancelOrdersForListing(_ context.Context, listingID string) (int64, error) {
	c.listingIDs = append(c.listingIDs, listingID)
	return c.cancelled, nil
}

func createListing(t *testing.T, store *memory.Store, status entities.BookStatus) entities.Listing {
	t.Helper()
	create := CreateListingUseCase{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
	}
	listing, err := create.Execute(context.Background(), CreateListingCommand{
		ProviderEmail: "provider@example.com",
		BookName:      "A Lendable Book",
		Price:         20,
		BookStatus:    status,
	})
	if err != nil {
		t.Fatalf("create listing failed: %v", err)
	}
	return listing
}

func TestCreateListingDefaultsToDraft(t *testing.T) {
	store := memory.NewStore()
	listing := createListing(t, store, "")
	if listing.BookStatus != entities.BookDraft {
		t.Fatalf("expected draft default, got %s", listing.BookStatus)
	}
}

func TestCreateListingRejectsNegativePrice(t *testing.T) {
	store := memory.NewStore()
	create := CreateListingUseCase{Repository: store, Clock: store, IDGenerator: store}
	_, err := create.Execute(context.Background(), CreateListingCommand{
		ProviderEmail: "provider@example.com",
		BookName:      "Bad Price",
		Price:         -1,
	})
	if !errors.Is(err, domainerrors.ErrInvalidPrice) {
		t.Fatalf("expected invalid price, got %v", err)
	}
}

func TestUpdateListingOwnershipEnforced(t *testing.T) {
	store := memory.NewStore()
	listing := createListing(t, store, entities.BookPublished)

	name := "Renamed"
	update := UpdateListingUseCase{Repository: store}
	_, err := update.Execute(context.Background(), UpdateListingCommand{
		ListingID:  listing.ListingID,
		ActorEmail: "other@example.com",
		Update:     ports.ListingUpdate{BookName: &name},
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	updated, err := update.Execute(context.Background(), UpdateListingCommand{
		ListingID:  listing.ListingID,
		ActorEmail: "other@example.com",
		ActorAdmin: true,
		Update:     ports.ListingUpdate{BookName: &name},
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.BookName != "Renamed" {
		t.Fatalf("unexpected book name %q", updated.BookName)
	}
}

func TestChangeListingStatusUnpublishCascades(t *testing.T) {
	store := memory.NewStore()
	listing := createListing(t, store, entities.BookPublished)

	orders := &countingCanceller{cancelled: 3}
	change := ChangeListingStatusUseCase{Repository: store, Orders: orders}
	result, err := change.Execute(context.Background(), ChangeListingStatusCommand{
		ListingID: listing.ListingID,
		Status:    entities.BookUnpublished,
	})
	if err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if result.OrdersCancelled != 3 {
		t.Fatalf("expected cascade count 3, got %d", result.OrdersCancelled)
	}
	if len(orders.listingIDs) != 1 || orders.listingIDs[0] != listing.ListingID {
		t.Fatalf("expected one cascade for %s, got %v", listing.ListingID, orders.listingIDs)
	}
}

func TestChangeListingStatusPublishDoesNotCascade(t *testing.T) {
	store := memory.NewStore()
	listing := createListing(t, store, entities.BookDraft)

	orders := &countingCanceller{}
	change := ChangeListingStatusUseCase{Repository: store, Orders: orders}
	result, err := change.Execute(context.Background(), ChangeListingStatusCommand{
		ListingID: listing.ListingID,
		Status:    entities.BookPublished,
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if result.OrdersCancelled != 0 || len(orders.listingIDs) != 0 {
		t.Fatalf("publishing must not cascade, got %+v", result)
	}
}

func TestDeleteListingCancelsOrdersFirst(t *testing.T) {
	store := memory.NewStore()
	listing := createListing(t, store, entities.BookPublished)

	orders := &countingCanceller{cancelled: 2}
	del := DeleteListingUseCase{Repository: store, Orders: orders}
	result, err := del.Execute(context.Background(), DeleteListingCommand{ListingID: listing.ListingID})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !result.Deleted || result.OrdersCancelled != 2 {
		t.Fatalf("unexpected delete result %+v", result)
	}
	if _, found, _ := store.GetListing(context.Background(), listing.ListingID); found {
		t.Fatal("listing must be gone after delete")
	}
}

func TestDeleteListingMissing(t *testing.T) {
	store := memory.NewStore()
	del := DeleteListingUseCase{Repository: store, Orders: &countingCanceller{}}
	_, err := del.Execute(context.Background(), DeleteListingCommand{ListingID: "missing"})
	if !errors.Is(err, domainerrors.ErrListingNotFound) {
		t.Fatalf("expected listing not found, got %v", err)
	}
}
