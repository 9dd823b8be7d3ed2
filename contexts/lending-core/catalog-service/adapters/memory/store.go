package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the repository, clock, and
// id-generator ports. It is intended for tests and local development wiring.
type Store struct {
	mu       sync.RWMutex
	listings map[string]entities.Listing
	now      time.Time
}

// NewStore builds a deterministic in-memory adapter.
func NewStore() *Store {
	return &Store{
		listings: make(map[string]entities.Listing),
		now:      time.Date(2025, time.January, 2, 12, 0, 0, 0, time.UTC),
	}
}

// Now returns a deterministic monotonic clock value.
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) GetListing(_ context.Context, listingID string) (entities.Listing, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing, ok := s.listings[listingID]
	return listing, ok, nil
}

func (s *Store) CreateListing(_ context.Context, listing entities.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[listing.ListingID] = listing
	return nil
}

func (s *Store) UpdateListing(_ context.Context, listingID string, update ports.ListingUpdate) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.listings[listingID]
	if !ok {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	if update.BookName != nil {
		listing.BookName = *update.BookName
	}
	if update.Author != nil {
		listing.Author = *update.Author
	}
	if update.ImageURL != nil {
		listing.ImageURL = *update.ImageURL
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Price != nil {
		listing.Price = *update.Price
	}
	s.listings[listingID] = listing
	return listing, nil
}

func (s *Store) UpdateListingStatus(_ context.Context, listingID string, status entities.BookStatus) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.listings[listingID]
	if !ok {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	listing.BookStatus = status
	s.listings[listingID] = listing
	return listing, nil
}

func (s *Store) DeleteListing(_ context.Context, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[listingID]; !ok {
		return domainerrors.ErrListingNotFound
	}
	delete(s.listings, listingID)
	return nil
}

func (s *Store) ListByStatus(_ context.Context, status entities.BookStatus) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Listing, 0)
	for _, listing := range s.listings {
		if listing.BookStatus == status {
			items = append(items, listing)
		}
	}
	sortListings(items)
	return items, nil
}

func (s *Store) ListByProvider(_ context.Context, providerEmail string) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Listing, 0)
	for _, listing := range s.listings {
		if listing.ProviderEmail == providerEmail {
			items = append(items, listing)
		}
	}
	sortListings(items)
	return items, nil
}

func (s *Store) ListAll(_ context.Context) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Listing, 0, len(s.listings))
	for _, listing := range s.listings {
		items = append(items, listing)
	}
	sortListings(items)
	return items, nil
}

func sortListings(items []entities.Listing) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
