package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bookcourier/contexts/lending-core/payment-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	"bookcourier/contexts/lending-core/payment-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the repository, clock,
// id-generator, and tracking-id ports. It is intended for tests and local
// development wiring.
type Store struct {
	mu       sync.RWMutex
	payments map[string]entities.Payment
	now      time.Time
	trackSeq int
}

// NewStore builds a deterministic in-memory adapter.
func NewStore() *Store {
	return &Store{
		payments: make(map[string]entities.Payment),
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

// NewTrackingID mints sequential codes so tests can assert exact values.
func (s *Store) NewTrackingID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackSeq++
	return fmt.Sprintf("TRK-%s-%04d", now.UTC().Format("20060102"), s.trackSeq)
}

func (s *Store) InsertPaymentIfAbsent(_ context.Context, payment entities.Payment) (bool, entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.payments[payment.SessionID]; ok {
		return false, existing, nil
	}
	s.payments[payment.SessionID] = payment
	return true, payment, nil
}

func (s *Store) GetBySessionID(_ context.Context, sessionID string) (entities.Payment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payment, ok := s.payments[sessionID]
	return payment, ok, nil
}

func (s *Store) ListByBuyer(_ context.Context, buyerEmail string) ([]entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Payment, 0)
	for _, payment := range s.payments {
		if payment.BuyerEmail == buyerEmail {
			items = append(items, payment)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].PaidAt.After(items[j].PaidAt)
	})
	return items, nil
}

// FakeGateway is a programmable stand-in for the checkout provider.
// Sessions are registered up front; unknown session ids and the Down flag
// reproduce gateway outage behavior.
type FakeGateway struct {
	mu         sync.Mutex
	sessions   map[string]ports.SessionStatus
	sessionSeq int
	Down       bool
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{sessions: make(map[string]ports.SessionStatus)}
}

// RegisterSession seeds a retrievable session with the given status.
func (g *FakeGateway) RegisterSession(sessionID string, status ports.SessionStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sessionID] = status
}

func (g *FakeGateway) CreateSession(_ context.Context, input ports.CreateSessionInput) (ports.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Down {
		return ports.CheckoutSession{}, domainerrors.ErrGatewayUnavailable
	}
	g.sessionSeq++
	sessionID := fmt.Sprintf("cs_test_%04d", g.sessionSeq)
	g.sessions[sessionID] = ports.SessionStatus{
		PaymentStatus: "unpaid",
		OrderID:       input.OrderID,
		BookName:      input.BookName,
		AmountTotal:   input.AmountMinor,
		Currency:      input.Currency,
		CustomerEmail: input.CustomerEmail,
	}
	return ports.CheckoutSession{
		SessionID: sessionID,
		URL:       "https://checkout.example.test/pay/" + sessionID,
	}, nil
}

func (g *FakeGateway) RetrieveSession(_ context.Context, sessionID string) (ports.SessionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Down {
		return ports.SessionStatus{}, domainerrors.ErrGatewayUnavailable
	}
	status, ok := g.sessions[sessionID]
	if !ok {
		return ports.SessionStatus{}, domainerrors.ErrGatewayUnavailable
	}
	return status, nil
}

// SettleSession flips a registered session to paid with a transaction id,
// simulating the buyer completing hosted checkout.
func (g *FakeGateway) SettleSession(sessionID, transactionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status := g.sessions[sessionID]
	status.PaymentStatus = "paid"
	status.TransactionID = transactionID
	g.sessions[sessionID] = status
}
