package httptransport

import "time"

type CreateListingRequest struct {
	BookName    string  `json:"bookName"`
	Author      string  `json:"author,omitempty"`
	ImageURL    string  `json:"bookImageUrl,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	BookStatus  string  `json:"bookStatus,omitempty"`
}

type UpdateListingRequest struct {
	BookName    *string  `json:"bookName,omitempty"`
	Author      *string  `json:"author,omitempty"`
	ImageURL    *string  `json:"bookImageUrl,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type ChangeListingStatusRequest struct {
	BookStatus string `json:"bookStatus"`
}

type ListingDTO struct {
	ListingID     string    `json:"listing_id"`
	ProviderEmail string    `json:"provider_email"`
	BookName      string    `json:"book_name"`
	Author        string    `json:"author,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	BookStatus    string    `json:"book_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListListingsResponse struct {
	Listings []ListingDTO `json:"listings"`
}

type ChangeListingStatusResponse struct {
	Listing         ListingDTO `json:"listing"`
	OrdersCancelled int64      `json:"orders_cancelled"`
}

type DeleteListingResponse struct {
	Deleted         bool  `json:"deleted"`
	OrdersCancelled int64 `json:"orders_cancelled"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
