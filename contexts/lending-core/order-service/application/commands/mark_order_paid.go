package commands

import (
	"context"
	"log/slog"
	"time"

	application "bookcourier/contexts/lending-core/order-service/application"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// MarkOrderPaidUseCase applies the payment side effect to an order: payment
// status paid, delivery status awaiting_pickup, and the tracking id, as one
// repository write. It is not caller-invocable; the payment service reaches
// it through its OrderReconciler port, which this use case satisfies
// structurally (wired in bootstrap).
type MarkOrderPaidUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u MarkOrderPaidUseCase) MarkPaid(ctx context.Context, orderID, trackingID string, paidAt time.Time) error {
	logger := application.ResolveLogger(u.Logger)

	if _, err := u.Repository.MarkOrderPaid(ctx, orderID, trackingID, paidAt); err != nil {
		logger.Error("mark order paid failed",
			"event", "order_mark_paid_failed",
			"module", "lending-core/order-service",
			"layer", "application",
			"order_id", orderID,
			"tracking_id", trackingID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("order marked paid",
		"event", "order_mark_paid_completed",
		"module", "lending-core/order-service",
		"layer", "application",
		"order_id", orderID,
		"tracking_id", trackingID,
	)
	return nil
}
