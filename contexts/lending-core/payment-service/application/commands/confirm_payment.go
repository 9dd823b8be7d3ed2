package commands

import (
	"context"
	"log/slog"
	"strings"

	application "bookcourier/contexts/lending-core/payment-service/application"
	"bookcourier/contexts/lending-core/payment-service/domain/entities"
	domainerrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

// ConfirmPaymentCommand finalizes a checkout session after the gateway
// redirect. RequesterEmail is the verified caller email; it is recorded
// alongside the gateway's customer email but never gates confirmation,
// because the redirect may land on a fresh browser session.
type ConfirmPaymentCommand struct {
	SessionID      string
	RequesterEmail string
}

// ConfirmPaymentResult reports the recorded payment. Paid=false means the
// gateway does not consider the session settled; AlreadyProcessed=true
// means another confirmation won the insert race (or a replay).
type ConfirmPaymentResult struct {
	Payment          entities.Payment `json:"payment"`
	Paid             bool             `json:"paid"`
	AlreadyProcessed bool             `json:"already_processed"`
}

// ConfirmPaymentUseCase is the reconciliation point between the gateway
// and the order context. The conditional insert on the unique session id
// elects exactly one winner; only the winner marks the order paid, so the
// order mutation happens at most once per session no matter how many
// times the endpoint is retried.
type ConfirmPaymentUseCase struct {
	Repository  ports.Repository
	Gateway     ports.CheckoutGateway
	Orders      ports.OrderReconciler
	TrackingIDs ports.TrackingIDGenerator
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	logger := application.ResolveLogger(u.Logger)

	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		return ConfirmPaymentResult{}, domainerrors.ErrInvalidPayment
	}

	status, err := u.Gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		logger.Error("session retrieval failed",
			"event", "payment_session_retrieve_failed",
			"module", "lending-core/payment-service",
			"layer", "application",
			"session_id", sessionID,
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}

	if status.PaymentStatus != "paid" {
		logger.Info("session not settled",
			"event", "payment_session_unsettled",
			"module", "lending-core/payment-service",
			"layer", "application",
			"session_id", sessionID,
			"gateway_status", status.PaymentStatus,
		)
		return ConfirmPaymentResult{Paid: false}, nil
	}
	if status.OrderID == "" {
		return ConfirmPaymentResult{}, domainerrors.ErrMissingOrderContext
	}

	paymentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	now := u.Clock.Now().UTC()
	trackingID := u.TrackingIDs.NewTrackingID(now)

	created, payment, err := u.Repository.InsertPaymentIfAbsent(ctx, entities.Payment{
		PaymentID:     paymentID,
		SessionID:     sessionID,
		OrderID:       status.OrderID,
		BookName:      status.BookName,
		Amount:        status.AmountTotal,
		Currency:      status.Currency,
		BuyerEmail:    strings.ToLower(status.CustomerEmail),
		TransactionID: status.TransactionID,
		PaymentStatus: "paid",
		TrackingID:    trackingID,
		PaidAt:        now,
	})
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	if !created {
		logger.Info("confirmation replayed",
			"event", "payment_confirm_replayed",
			"module", "lending-core/payment-service",
			"layer", "application",
			"session_id", sessionID,
			"order_id", payment.OrderID,
		)
		return ConfirmPaymentResult{Payment: payment, Paid: true, AlreadyProcessed: true}, nil
	}

	if err := u.Orders.MarkPaid(ctx, payment.OrderID, payment.TrackingID, payment.PaidAt); err != nil {
		return ConfirmPaymentResult{}, err
	}

	logger.Info("payment confirmed",
		"event", "payment_confirm_completed",
		"module", "lending-core/payment-service",
		"layer", "application",
		"session_id", sessionID,
		"order_id", payment.OrderID,
		"tracking_id", payment.TrackingID,
	)
	return ConfirmPaymentResult{Payment: payment, Paid: true}, nil
}
