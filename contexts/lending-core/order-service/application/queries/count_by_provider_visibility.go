package queries

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/order-service/domain/entities"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// Dashboard bucket labels for the provider-side visibility flag.
const (
	LabelActiveOrders            = "Active Orders"
	LabelProviderCancelledOrders = "Provider-Cancelled Orders"
	LabelOtherOrders             = "Other Orders"
)

// StatusBucket is one labelled dashboard count.
type StatusBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CountByProviderVisibilityUseCase buckets all orders by the provider-side
// visibility flag for the dashboard. Read-only; an empty store yields an
// empty result, not an error.
type CountByProviderVisibilityUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u CountByProviderVisibilityUseCase) Execute(ctx context.Context) ([]StatusBucket, error) {
	rows, err := u.Repository.CountByProviderVisibility(ctx)
	if err != nil {
		return nil, err
	}

	var active, cancelled, other int64
	for _, row := range rows {
		switch row.Status {
		case entities.VisibilityVisible:
			active += row.Count
		case entities.VisibilityDeleted:
			cancelled += row.Count
		default:
			other += row.Count
		}
	}

	buckets := make([]StatusBucket, 0, 3)
	if active > 0 {
		buckets = append(buckets, StatusBucket{Label: LabelActiveOrders, Count: active})
	}
	if cancelled > 0 {
		buckets = append(buckets, StatusBucket{Label: LabelProviderCancelledOrders, Count: cancelled})
	}
	if other > 0 {
		buckets = append(buckets, StatusBucket{Label: LabelOtherOrders, Count: other})
	}
	return buckets, nil
}
