package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookcourier/contexts/lending-core/payment-service/domain/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

type paymentModel struct {
	PaymentID     string    `gorm:"column:payment_id;primaryKey"`
	SessionID     string    `gorm:"column:session_id;uniqueIndex"`
	OrderID       string    `gorm:"column:order_id;index"`
	BookName      string    `gorm:"column:book_name"`
	Amount        int64     `gorm:"column:amount"`
	Currency      string    `gorm:"column:currency"`
	BuyerEmail    string    `gorm:"column:buyer_email;index"`
	TransactionID string    `gorm:"column:transaction_id"`
	PaymentStatus string    `gorm:"column:payment_status"`
	TrackingID    string    `gorm:"column:tracking_id"`
	PaidAt        time.Time `gorm:"column:paid_at"`
}

func (paymentModel) TableName() string {
	return "payments"
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:     m.PaymentID,
		SessionID:     m.SessionID,
		OrderID:       m.OrderID,
		BookName:      m.BookName,
		Amount:        m.Amount,
		Currency:      m.Currency,
		BuyerEmail:    m.BuyerEmail,
		TransactionID: m.TransactionID,
		PaymentStatus: m.PaymentStatus,
		TrackingID:    m.TrackingID,
		PaidAt:        m.PaidAt,
	}
}

// InsertPaymentIfAbsent relies on the unique session_id index: under
// concurrent confirmation only one insert lands, and every loser reads
// back the winner's row.
func (r *Repository) InsertPaymentIfAbsent(ctx context.Context, payment entities.Payment) (bool, entities.Payment, error) {
	row := paymentModel{
		PaymentID:     payment.PaymentID,
		SessionID:     payment.SessionID,
		OrderID:       payment.OrderID,
		BookName:      payment.BookName,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		BuyerEmail:    payment.BuyerEmail,
		TransactionID: payment.TransactionID,
		PaymentStatus: payment.PaymentStatus,
		TrackingID:    payment.TrackingID,
		PaidAt:        payment.PaidAt,
	}

	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil && !isUniqueViolation(create.Error) {
		return false, entities.Payment{}, create.Error
	}
	if create.Error == nil && create.RowsAffected > 0 {
		return true, payment, nil
	}

	existing, found, err := r.GetBySessionID(ctx, payment.SessionID)
	if err != nil {
		return false, entities.Payment{}, err
	}
	if !found {
		return false, entities.Payment{}, gorm.ErrRecordNotFound
	}
	return false, existing, nil
}

func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, bool, error) {
	var row paymentModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).
		Where("buyer_email = ?", buyerEmail).
		Order("paid_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
