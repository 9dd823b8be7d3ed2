package entities

import "time"

// PaymentStatus is the closed set of order payment states.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// DeliveryStatus is the closed set of order delivery states.
type DeliveryStatus string

const (
	DeliveryPending             DeliveryStatus = "pending"
	DeliveryAwaitingPickup      DeliveryStatus = "awaiting_pickup"
	DeliveryDelivered           DeliveryStatus = "delivered"
	DeliveryCancelledSelf       DeliveryStatus = "cancelled_self"
	DeliveryCancelledByProvider DeliveryStatus = "cancelled_by_provider"
	DeliveryCancelledRefund     DeliveryStatus = "cancelled_refund"
)

// IsValid reports whether the status belongs to the closed set.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryAwaitingPickup, DeliveryDelivered,
		DeliveryCancelledSelf, DeliveryCancelledByProvider, DeliveryCancelledRefund:
		return true
	}
	return false
}

// IsTerminal reports whether no caller-driven transition may leave s.
func (s DeliveryStatus) IsTerminal() bool {
	switch s {
	case DeliveryDelivered, DeliveryCancelledSelf,
		DeliveryCancelledByProvider, DeliveryCancelledRefund:
		return true
	}
	return false
}

// deliveryTransitions is the caller-reachable edge set. cancelled_refund is
// deliberately absent: the withdrawal cascade overrides any state, including
// terminal ones, and is never caller-invocable.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryPending: {
		DeliveryAwaitingPickup,
		DeliveryCancelledSelf,
		DeliveryCancelledByProvider,
	},
	DeliveryAwaitingPickup: {
		DeliveryDelivered,
		DeliveryCancelledSelf,
		DeliveryCancelledByProvider,
	},
}

// CanTransition reports whether the caller-driven edge from→to exists.
func CanTransition(from, to DeliveryStatus) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// VisibilityStatus is a per-party soft-hide flag; it never affects the
// other party's view nor the aggregation engine's source data.
type VisibilityStatus string

const (
	VisibilityVisible VisibilityStatus = ""
	VisibilityDeleted VisibilityStatus = "deleted"
)

// Order is a buyer's purchase request against a listing. Book name, price,
// and provider email are snapshotted at creation time so history survives
// later listing edits.
type Order struct {
	OrderID              string           `json:"order_id"`
	ListingID            string           `json:"listing_id"`
	BuyerEmail           string           `json:"buyer_email"`
	ProviderEmail        string           `json:"provider_email"`
	Address              string           `json:"address"`
	BookName             string           `json:"book_name"`
	Price                float64          `json:"price"`
	CreatedAt            time.Time        `json:"created_at"`
	PaymentStatus        PaymentStatus    `json:"payment_status"`
	DeliveryStatus       DeliveryStatus   `json:"delivery_status"`
	UserOrderStatus      VisibilityStatus `json:"user_order_status"`
	LibrarianOrderStatus VisibilityStatus `json:"librarian_order_status"`
	TrackingID           string           `json:"tracking_id,omitempty"`
}
