package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookcourier/contexts/lending-core/catalog-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	"bookcourier/contexts/lending-core/catalog-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type listingModel struct {
	ListingID     string    `gorm:"column:listing_id;primaryKey"`
	ProviderEmail string    `gorm:"column:provider_email;index"`
	BookName      string    `gorm:"column:book_name"`
	Author        string    `gorm:"column:author"`
	ImageURL      string    `gorm:"column:image_url"`
	Description   string    `gorm:"column:description"`
	Price         float64   `gorm:"column:price"`
	BookStatus    string    `gorm:"column:book_status;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (listingModel) TableName() string {
	return "listings"
}

func (m listingModel) toEntity() entities.Listing {
	return entities.Listing{
		ListingID:     m.ListingID,
		ProviderEmail: m.ProviderEmail,
		BookName:      m.BookName,
		Author:        m.Author,
		ImageURL:      m.ImageURL,
		Description:   m.Description,
		Price:         m.Price,
		BookStatus:    entities.BookStatus(m.BookStatus),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *Repository) GetListing(ctx context.Context, listingID string) (entities.Listing, bool, error) {
	var row listingModel
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Listing{}, false, nil
		}
		return entities.Listing{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateListing(ctx context.Context, listing entities.Listing) error {
	row := listingModel{
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
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateListing(ctx context.Context, listingID string, update ports.ListingUpdate) (entities.Listing, error) {
	assignments := make(map[string]any)
	if update.BookName != nil {
		assignments["book_name"] = *update.BookName
	}
	if update.Author != nil {
		assignments["author"] = *update.Author
	}
	if update.ImageURL != nil {
		assignments["image_url"] = *update.ImageURL
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}
	if update.Price != nil {
		assignments["price"] = *update.Price
	}

	if len(assignments) > 0 {
		result := r.db.WithContext(ctx).
			Model(&listingModel{}).
			Where("listing_id = ?", listingID).
			Updates(assignments)
		if result.Error != nil {
			return entities.Listing{}, result.Error
		}
		if result.RowsAffected == 0 {
			return entities.Listing{}, domainerrors.ErrListingNotFound
		}
	}

	updated, found, err := r.GetListing(ctx, listingID)
	if err != nil {
		return entities.Listing{}, err
	}
	if !found {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return updated, nil
}

func (r *Repository) UpdateListingStatus(ctx context.Context, listingID string, status entities.BookStatus) (entities.Listing, error) {
	result := r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("listing_id = ?", listingID).
		Update("book_status", string(status))
	if result.Error != nil {
		return entities.Listing{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}

	updated, found, err := r.GetListing(ctx, listingID)
	if err != nil {
		return entities.Listing{}, err
	}
	if !found {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return updated, nil
}

func (r *Repository) DeleteListing(ctx context.Context, listingID string) error {
	del := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&listingModel{})
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return domainerrors.ErrListingNotFound
	}
	return nil
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.BookStatus) ([]entities.Listing, error) {
	var rows []listingModel
	if err := r.db.WithContext(ctx).
		Where("book_status = ?", string(status)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByProvider(ctx context.Context, providerEmail string) ([]entities.Listing, error) {
	var rows []listingModel
	if err := r.db.WithContext(ctx).
		Where("provider_email = ?", providerEmail).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Listing, error) {
	var rows []listingModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func toEntities(rows []listingModel) []entities.Listing {
	items := make([]entities.Listing, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
