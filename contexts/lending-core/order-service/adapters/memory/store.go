package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	"bookcourier/contexts/lending-core/order-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the repository, clock, and
// id-generator ports. It is intended for tests and local development wiring.
type Store struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	now    time.Time
}

// NewStore builds a deterministic in-memory adapter.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]entities.Order),
		now:    time.Date(2025, time.January, 2, 12, 0, 0, 0, time.UTC),
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

func (s *Store) GetOrder(_ context.Context, orderID string) (entities.Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	return order, ok, nil
}

func (s *Store) CreateOrder(_ context.Context, order entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = order
	return nil
}

func (s *Store) UpdateDeliveryStatus(_ context.Context, orderID string, status entities.DeliveryStatus) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	order.DeliveryStatus = status
	s.orders[orderID] = order
	return order, nil
}

func (s *Store) SetBuyerVisibility(_ context.Context, orderID string, status entities.VisibilityStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.UserOrderStatus = status
	s.orders[orderID] = order
	return nil
}

func (s *Store) SetProviderVisibility(_ context.Context, orderID string, status entities.VisibilityStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.LibrarianOrderStatus = status
	s.orders[orderID] = order
	return nil
}

func (s *Store) MarkOrderPaid(_ context.Context, orderID, trackingID string, _ time.Time) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	order.PaymentStatus = entities.PaymentPaid
	order.DeliveryStatus = entities.DeliveryAwaitingPickup
	order.TrackingID = trackingID
	s.orders[orderID] = order
	return order, nil
}

func (s *Store) CancelOrdersForListing(_ context.Context, listingID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cancelled int64
	for id, order := range s.orders {
		if order.ListingID != listingID {
			continue
		}
		order.DeliveryStatus = entities.DeliveryCancelledRefund
		s.orders[id] = order
		cancelled++
	}
	return cancelled, nil
}

func (s *Store) ListByBuyer(_ context.Context, buyerEmail string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Order, 0)
	for _, order := range s.orders {
		if order.BuyerEmail == buyerEmail {
			items = append(items, order)
		}
	}
	sortOrders(items)
	return items, nil
}

func (s *Store) ListByProvider(_ context.Context, providerEmail string) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Order, 0)
	for _, order := range s.orders {
		if order.ProviderEmail == providerEmail {
			items = append(items, order)
		}
	}
	sortOrders(items)
	return items, nil
}

func (s *Store) CountByProviderVisibility(_ context.Context) ([]ports.VisibilityCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[entities.VisibilityStatus]int64)
	for _, order := range s.orders {
		counts[order.LibrarianOrderStatus]++
	}
	rows := make([]ports.VisibilityCount, 0, len(counts))
	for status, count := range counts {
		rows = append(rows, ports.VisibilityCount{Status: status, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Status < rows[j].Status
	})
	return rows, nil
}

func sortOrders(items []entities.Order) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
