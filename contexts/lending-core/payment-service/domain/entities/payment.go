package entities

import "time"

// Payment is the immutable record of one settled checkout session. Exactly
// one row exists per gateway session id regardless of how many times the
// confirmation endpoint is hit.
type Payment struct {
	PaymentID     string    `json:"payment_id"`
	SessionID     string    `json:"session_id"`
	OrderID       string    `json:"order_id"`
	BookName      string    `json:"book_name"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	BuyerEmail    string    `json:"buyer_email"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	TrackingID    string    `json:"tracking_id"`
	PaidAt        time.Time `json:"paid_at"`
}
