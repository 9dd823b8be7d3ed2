package httptransport

import "time"

type CreateCheckoutSessionRequest struct {
	OrderID  string  `json:"orderId"`
	BookName string  `json:"bookName"`
	Price    float64 `json:"price"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type PaymentDTO struct {
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

type ConfirmPaymentResponse struct {
	Paid             bool        `json:"paid"`
	AlreadyProcessed bool        `json:"already_processed,omitempty"`
	Payment          *PaymentDTO `json:"payment,omitempty"`
}

type ListPaymentsResponse struct {
	Payments []PaymentDTO `json:"payments"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
