package httptransport

import "time"

type CreateOrderRequest struct {
	ListingID string `json:"bookId"`
	Address   string `json:"address,omitempty"`
}

type CreateOrderResponse struct {
	Available bool      `json:"available"`
	Order     *OrderDTO `json:"order,omitempty"`
}

type TransitionDeliveryRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

type OrderDTO struct {
	OrderID              string    `json:"order_id"`
	ListingID            string    `json:"listing_id"`
	BuyerEmail           string    `json:"buyer_email"`
	ProviderEmail        string    `json:"provider_email"`
	Address              string    `json:"address,omitempty"`
	BookName             string    `json:"book_name"`
	Price                float64   `json:"price"`
	CreatedAt            time.Time `json:"created_at"`
	PaymentStatus        string    `json:"payment_status"`
	DeliveryStatus       string    `json:"delivery_status"`
	UserOrderStatus      string    `json:"user_order_status,omitempty"`
	LibrarianOrderStatus string    `json:"librarian_order_status,omitempty"`
	TrackingID           string    `json:"tracking_id,omitempty"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}

type HideOrderResponse struct {
	Hidden bool `json:"hidden"`
}

type StatusBucketDTO struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type OrderStatsResponse struct {
	Buckets []StatusBucketDTO `json:"buckets"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
