package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/lending-core/catalog-service/application"
	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// CreateListingCommand contains transport-agnostic input for listing creation.
// ProviderEmail is always the verified caller email.
type CreateListingCommand struct {
	ProviderEmail string
	BookName      string
	Author        string
	ImageURL      string
	Description   string
	Price         float64
	BookStatus    entities.BookStatus
}

// CreateListingUseCase stores a new listing for a librarian.
type CreateListingUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.BookName) == "" || strings.TrimSpace(cmd.ProviderEmail) == "" {
		return entities.Listing{}, domainerrors.ErrInvalidListing
	}
	if cmd.Price < 0 {
		return entities.Listing{}, domainerrors.ErrInvalidPrice
	}

	status := cmd.BookStatus
	if status == "" {
		status = entities.BookDraft
	}
	if !status.IsValid() {
		return entities.Listing{}, domainerrors.ErrInvalidListingStatus
	}

	listingID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Listing{}, err
	}

	listing := entities.Listing{
		ListingID:     listingID,
		ProviderEmail: strings.ToLower(strings.TrimSpace(cmd.ProviderEmail)),
		BookName:      strings.TrimSpace(cmd.BookName),
		Author:        strings.TrimSpace(cmd.Author),
		ImageURL:      strings.TrimSpace(cmd.ImageURL),
		Description:   strings.TrimSpace(cmd.Description),
		Price:         cmd.Price,
		BookStatus:    status,
		CreatedAt:     u.Clock.Now().UTC(),
	}

	if err := u.Repository.CreateListing(ctx, listing); err != nil {
		logger.Error("listing create failed",
			"event", "catalog_create_listing_failed",
			"module", "lending-core/catalog-service",
			"layer", "application",
			"provider_email", listing.ProviderEmail,
			"error", err.Error(),
		)
		return entities.Listing{}, err
	}

	logger.Info("listing created",
		"event", "catalog_create_listing_completed",
		"module", "lending-core/catalog-service",
		"layer", "application",
		"listing_id", listingID,
		"provider_email", listing.ProviderEmail,
		"book_status", string(status),
	)
	return listing, nil
}
