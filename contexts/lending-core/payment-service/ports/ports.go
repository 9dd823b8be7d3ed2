package ports

import (
	"context"
	"time"

	"bookcourier/contexts/lending-core/payment-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts record identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TrackingIDGenerator mints shipment tracking codes, TRK-YYYYMMDD-NNNN.
type TrackingIDGenerator interface {
	NewTrackingID(now time.Time) string
}

// CreateSessionInput carries everything the gateway needs to host checkout.
type CreateSessionInput struct {
	OrderID       string
	BookName      string
	AmountMinor   int64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the gateway-hosted page the buyer is redirected to.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// SessionStatus is the gateway's view of a session at retrieval time.
// OrderID and BookName round-trip through session metadata.
type SessionStatus struct {
	PaymentStatus string
	OrderID       string
	BookName      string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	TransactionID string
}

// CheckoutGateway is the external payment provider boundary. Transport
// failures and provider errors surface as ErrGatewayUnavailable.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (SessionStatus, error)
}

// OrderReconciler applies the paid side effect to the order context.
// Satisfied structurally by the order service's mark-paid use case.
type OrderReconciler interface {
	MarkPaid(ctx context.Context, orderID, trackingID string, paidAt time.Time) error
}

// Repository is the write/read boundary for payment records.
// InsertPaymentIfAbsent must be atomic on the unique session id: exactly
// one concurrent caller observes created=true.
type Repository interface {
	InsertPaymentIfAbsent(ctx context.Context, payment entities.Payment) (bool, entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, bool, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Payment, error)
}
