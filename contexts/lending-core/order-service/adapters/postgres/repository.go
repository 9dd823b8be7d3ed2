package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	"bookcourier/contexts/lending-core/order-service/ports"

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

type orderModel struct {
	OrderID              string    `gorm:"column:order_id;primaryKey"`
	ListingID            string    `gorm:"column:listing_id;index"`
	BuyerEmail           string    `gorm:"column:buyer_email;index"`
	ProviderEmail        string    `gorm:"column:provider_email;index"`
	Address              string    `gorm:"column:address"`
	BookName             string    `gorm:"column:book_name"`
	Price                float64   `gorm:"column:price"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	PaymentStatus        string    `gorm:"column:payment_status"`
	DeliveryStatus       string    `gorm:"column:delivery_status;index"`
	UserOrderStatus      string    `gorm:"column:user_order_status"`
	LibrarianOrderStatus string    `gorm:"column:librarian_order_status;index"`
	TrackingID           string    `gorm:"column:tracking_id"`
}

func (orderModel) TableName() string {
	return "orders"
}

func (m orderModel) toEntity() entities.Order {
	return entities.Order{
		OrderID:              m.OrderID,
		ListingID:            m.ListingID,
		BuyerEmail:           m.BuyerEmail,
		ProviderEmail:        m.ProviderEmail,
		Address:              m.Address,
		BookName:             m.BookName,
		Price:                m.Price,
		CreatedAt:            m.CreatedAt,
		PaymentStatus:        entities.PaymentStatus(m.PaymentStatus),
		DeliveryStatus:       entities.DeliveryStatus(m.DeliveryStatus),
		UserOrderStatus:      entities.VisibilityStatus(m.UserOrderStatus),
		LibrarianOrderStatus: entities.VisibilityStatus(m.LibrarianOrderStatus),
		TrackingID:           m.TrackingID,
	}
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (entities.Order, bool, error) {
	var row orderModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Order{}, false, nil
		}
		return entities.Order{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order entities.Order) error {
	row := orderModel{
		OrderID:              order.OrderID,
		ListingID:            order.ListingID,
		BuyerEmail:           order.BuyerEmail,
		ProviderEmail:        order.ProviderEmail,
		Address:              order.Address,
		BookName:             order.BookName,
		Price:                order.Price,
		CreatedAt:            order.CreatedAt,
		PaymentStatus:        string(order.PaymentStatus),
		DeliveryStatus:       string(order.DeliveryStatus),
		UserOrderStatus:      string(order.UserOrderStatus),
		LibrarianOrderStatus: string(order.LibrarianOrderStatus),
		TrackingID:           order.TrackingID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateDeliveryStatus(ctx context.Context, orderID string, status entities.DeliveryStatus) (entities.Order, error) {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", orderID).
		Update("delivery_status", string(status))
	if result.Error != nil {
		return entities.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return r.mustGet(ctx, orderID)
}

func (r *Repository) SetBuyerVisibility(ctx context.Context, orderID string, status entities.VisibilityStatus) error {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", orderID).
		Update("user_order_status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) SetProviderVisibility(ctx context.Context, orderID string, status entities.VisibilityStatus) error {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", orderID).
		Update("librarian_order_status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) MarkOrderPaid(ctx context.Context, orderID, trackingID string, _ time.Time) (entities.Order, error) {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"payment_status":  string(entities.PaymentPaid),
			"delivery_status": string(entities.DeliveryAwaitingPickup),
			"tracking_id":     trackingID,
		})
	if result.Error != nil {
		return entities.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return r.mustGet(ctx, orderID)
}

func (r *Repository) CancelOrdersForListing(ctx context.Context, listingID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("listing_id = ?", listingID).
		Update("delivery_status", string(entities.DeliveryCancelledRefund))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("buyer_email = ?", buyerEmail).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByProvider(ctx context.Context, providerEmail string) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("provider_email = ?", providerEmail).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) CountByProviderVisibility(ctx context.Context) ([]ports.VisibilityCount, error) {
	type groupRow struct {
		Status string `gorm:"column:librarian_order_status"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []groupRow
	if err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Select("librarian_order_status, COUNT(*) AS count").
		Group("librarian_order_status").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}
	counts := make([]ports.VisibilityCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ports.VisibilityCount{
			Status: entities.VisibilityStatus(row.Status),
			Count:  row.Count,
		})
	}
	return counts, nil
}

func (r *Repository) mustGet(ctx context.Context, orderID string) (entities.Order, error) {
	order, found, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

func toEntities(rows []orderModel) []entities.Order {
	items := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
