package httpadapter

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/catalog-service/application/commands"
	"bookcourier/contexts/lending-core/catalog-service/application/queries"
	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	"bookcourier/contexts/lending-core/catalog-service/ports"
	httptransport "bookcourier/contexts/lending-core/catalog-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateListing  commands.CreateListingUseCase
	UpdateListing  commands.UpdateListingUseCase
	ChangeStatus   commands.ChangeListingStatusUseCase
	DeleteListing  commands.DeleteListingUseCase
	GetListing     queries.GetListingUseCase
	ListPublished  queries.ListPublishedUseCase
	ListByProvider queries.ListByProviderUseCase
	ListAll        queries.ListAllUseCase
	Logger         *slog.Logger
}

// CreateListingHandler stores a listing owned by the verified caller.
func (h Handler) CreateListingHandler(ctx context.Context, providerEmail string, request httptransport.CreateListingRequest) (httptransport.ListingDTO, error) {
	listing, err := h.CreateListing.Execute(ctx, commands.CreateListingCommand{
		ProviderEmail: providerEmail,
		BookName:      request.BookName,
		Author:        request.Author,
		ImageURL:      request.ImageURL,
		Description:   request.Description,
		Price:         request.Price,
		BookStatus:    entities.BookStatus(request.BookStatus),
	})
	if err != nil {
		return httptransport.ListingDTO{}, err
	}
	return toListingDTO(listing), nil
}

// UpdateListingHandler patches a listing after an ownership check.
func (h Handler) UpdateListingHandler(ctx context.Context, listingID, actorEmail string, actorAdmin bool, request httptransport.UpdateListingRequest) (httptransport.ListingDTO, error) {
	listing, err := h.UpdateListing.Execute(ctx, commands.UpdateListingCommand{
		ListingID:  listingID,
		ActorEmail: actorEmail,
		ActorAdmin: actorAdmin,
		Update: ports.ListingUpdate{
			BookName:    request.BookName,
			Author:      request.Author,
			ImageURL:    request.ImageURL,
			Description: request.Description,
			Price:       request.Price,
		},
	})
	if err != nil {
		return httptransport.ListingDTO{}, err
	}
	return toListingDTO(listing), nil
}

// ChangeStatusHandler mutates publication status; withdrawal cascades.
func (h Handler) ChangeStatusHandler(ctx context.Context, listingID string, request httptransport.ChangeListingStatusRequest) (httptransport.ChangeListingStatusResponse, error) {
	result, err := h.ChangeStatus.Execute(ctx, commands.ChangeListingStatusCommand{
		ListingID: listingID,
		Status:    entities.BookStatus(request.BookStatus),
	})
	if err != nil {
		return httptransport.ChangeListingStatusResponse{}, err
	}
	return httptransport.ChangeListingStatusResponse{
		Listing:         toListingDTO(result.Listing),
		OrdersCancelled: result.OrdersCancelled,
	}, nil
}

// DeleteListingHandler deletes a listing; its orders are cancelled first.
func (h Handler) DeleteListingHandler(ctx context.Context, listingID string) (httptransport.DeleteListingResponse, error) {
	result, err := h.DeleteListing.Execute(ctx, commands.DeleteListingCommand{ListingID: listingID})
	if err != nil {
		return httptransport.DeleteListingResponse{}, err
	}
	return httptransport.DeleteListingResponse{
		Deleted:         result.Deleted,
		OrdersCancelled: result.OrdersCancelled,
	}, nil
}

// GetListingHandler fetches one listing.
func (h Handler) GetListingHandler(ctx context.Context, listingID string) (httptransport.ListingDTO, error) {
	listing, err := h.GetListing.Execute(ctx, queries.GetListingQuery{ListingID: listingID})
	if err != nil {
		return httptransport.ListingDTO{}, err
	}
	return toListingDTO(listing), nil
}

// ListPublishedHandler returns the storefront view.
func (h Handler) ListPublishedHandler(ctx context.Context) (httptransport.ListListingsResponse, error) {
	items, err := h.ListPublished.Execute(ctx)
	if err != nil {
		return httptransport.ListListingsResponse{}, err
	}
	return toListResponse(items), nil
}

// ListByProviderHandler returns the caller's own listings.
func (h Handler) ListByProviderHandler(ctx context.Context, providerEmail string) (httptransport.ListListingsResponse, error) {
	items, err := h.ListByProvider.Execute(ctx, queries.ListByProviderQuery{ProviderEmail: providerEmail})
	if err != nil {
		return httptransport.ListListingsResponse{}, err
	}
	return toListResponse(items), nil
}

// ListAllHandler returns every listing for admin review.
func (h Handler) ListAllHandler(ctx context.Context) (httptransport.ListListingsResponse, error) {
	items, err := h.ListAll.Execute(ctx)
	if err != nil {
		return httptransport.ListListingsResponse{}, err
	}
	return toListResponse(items), nil
}

func toListingDTO(listing entities.Listing) httptransport.ListingDTO {
	return httptransport.ListingDTO{
		ListingID:     listing.ListingID,
		ProviderEmail: listing.ProviderEmail,
		BookName:      listing.BookName,
		Author:        listing.Author,
		ImageURL:      listing.ImageURL,
		Description:   listing.Description,
		Price:         listing.Price,
		BookStatus:    string(listing.BookStatus),
		CreatedAt:     listing.CreatedAt,
	}
}

func toListResponse(items []entities.Listing) httptransport.ListListingsResponse {
	dtos := make([]httptransport.ListingDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toListingDTO(item))
	}
	return httptransport.ListListingsResponse{Listings: dtos}
}
