package commands

import (
	"context"
	"log/slog"
	"math"
	"strings"

	application "bookcourier/contexts/lending-core/payment-service/application"
	domainerrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

const defaultCurrency = "usd"

// CreateCheckoutSessionCommand opens a gateway-hosted checkout for one
// order. BuyerEmail is always the verified caller email; Price is in major
// units as quoted on the order.
type CreateCheckoutSessionCommand struct {
	OrderID    string
	BookName   string
	Price      float64
	BuyerEmail string
}

// CreateCheckoutSessionResult carries the redirect target for the client.
type CreateCheckoutSessionResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreateCheckoutSessionUseCase builds the gateway session. Order id and
// book name travel in session metadata so confirmation can reconcile
// without a second lookup.
type CreateCheckoutSessionUseCase struct {
	Gateway    ports.CheckoutGateway
	SiteOrigin string
	Logger     *slog.Logger
}

func (u CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (CreateCheckoutSessionResult, error) {
	logger := application.ResolveLogger(u.Logger)

	buyerEmail := strings.ToLower(strings.TrimSpace(cmd.BuyerEmail))
	if buyerEmail == "" || strings.TrimSpace(cmd.OrderID) == "" || cmd.Price <= 0 {
		return CreateCheckoutSessionResult{}, domainerrors.ErrInvalidPayment
	}

	origin := strings.TrimRight(u.SiteOrigin, "/")
	session, err := u.Gateway.CreateSession(ctx, ports.CreateSessionInput{
		OrderID:       cmd.OrderID,
		BookName:      cmd.BookName,
		AmountMinor:   int64(math.Round(cmd.Price * 100)),
		Currency:      defaultCurrency,
		CustomerEmail: buyerEmail,
		SuccessURL:    origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/payment-cancel",
	})
	if err != nil {
		logger.Error("checkout session creation failed",
			"event", "payment_session_create_failed",
			"module", "lending-core/payment-service",
			"layer", "application",
			"order_id", cmd.OrderID,
			"error", err.Error(),
		)
		return CreateCheckoutSessionResult{}, err
	}

	logger.Info("checkout session created",
		"event", "payment_session_created",
		"module", "lending-core/payment-service",
		"layer", "application",
		"order_id", cmd.OrderID,
		"session_id", session.SessionID,
	)
	return CreateCheckoutSessionResult{
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}
