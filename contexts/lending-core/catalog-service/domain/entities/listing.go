package entities

import "time"

// BookStatus is the closed set of listing publication states.
type BookStatus string

const (
	BookDraft       BookStatus = "draft"
	BookPublished   BookStatus = "published"
	BookUnpublished BookStatus = "unpublished"
)

// IsValid reports whether the status belongs to the closed set.
func (s BookStatus) IsValid() bool {
	switch s {
	case BookDraft, BookPublished, BookUnpublished:
		return true
	}
	return false
}

// Listing is one book offering created by a provider. Orders may only be
// created against a published listing.
type Listing struct {
	ListingID     string     `json:"listing_id"`
	ProviderEmail string     `json:"provider_email"`
	BookName      string     `json:"book_name"`
	Author        string     `json:"author,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price"`
	BookStatus    BookStatus `json:"book_status"`
	CreatedAt     time.Time  `json:"created_at"`
}
