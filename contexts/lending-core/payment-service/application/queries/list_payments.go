package queries

import (
	"context"
	"log/slog"
	"strings"

	"bookcourier/contexts/lending-core/payment-service/domain/entities"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

// ListPaymentsQuery lists the verified caller's payment history.
type ListPaymentsQuery struct {
	BuyerEmail string
}

// ListPaymentsUseCase returns the caller's payments, newest first.
type ListPaymentsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListPaymentsUseCase) Execute(ctx context.Context, query ListPaymentsQuery) ([]entities.Payment, error) {
	return u.Repository.ListByBuyer(ctx, strings.ToLower(strings.TrimSpace(query.BuyerEmail)))
}
