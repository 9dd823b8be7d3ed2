package httpadapter

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/payment-service/application/commands"
	"bookcourier/contexts/lending-core/payment-service/application/queries"
	"bookcourier/contexts/lending-core/payment-service/domain/entities"
	httptransport "bookcourier/contexts/lending-core/payment-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateSession  commands.CreateCheckoutSessionUseCase
	ConfirmPayment commands.ConfirmPaymentUseCase
	ListPayments   queries.ListPaymentsUseCase
	Logger         *slog.Logger
}

// CreateSessionHandler opens a gateway-hosted checkout for the caller.
func (h Handler) CreateSessionHandler(ctx context.Context, buyerEmail string, request httptransport.CreateCheckoutSessionRequest) (httptransport.CreateCheckoutSessionResponse, error) {
	result, err := h.CreateSession.Execute(ctx, commands.CreateCheckoutSessionCommand{
		OrderID:    request.OrderID,
		BookName:   request.BookName,
		Price:      request.Price,
		BuyerEmail: buyerEmail,
	})
	if err != nil {
		return httptransport.CreateCheckoutSessionResponse{}, err
	}
	return httptransport.CreateCheckoutSessionResponse{
		SessionID: result.SessionID,
		URL:       result.URL,
	}, nil
}

// ConfirmPaymentHandler finalizes a session after the gateway redirect.
func (h Handler) ConfirmPaymentHandler(ctx context.Context, sessionID, requesterEmail string) (httptransport.ConfirmPaymentResponse, error) {
	result, err := h.ConfirmPayment.Execute(ctx, commands.ConfirmPaymentCommand{
		SessionID:      sessionID,
		RequesterEmail: requesterEmail,
	})
	if err != nil {
		return httptransport.ConfirmPaymentResponse{}, err
	}
	if !result.Paid {
		return httptransport.ConfirmPaymentResponse{Paid: false}, nil
	}
	dto := toPaymentDTO(result.Payment)
	return httptransport.ConfirmPaymentResponse{
		Paid:             true,
		AlreadyProcessed: result.AlreadyProcessed,
		Payment:          &dto,
	}, nil
}

// ListPaymentsHandler returns the caller's payment history.
func (h Handler) ListPaymentsHandler(ctx context.Context, buyerEmail string) (httptransport.ListPaymentsResponse, error) {
	items, err := h.ListPayments.Execute(ctx, queries.ListPaymentsQuery{BuyerEmail: buyerEmail})
	if err != nil {
		return httptransport.ListPaymentsResponse{}, err
	}
	dtos := make([]httptransport.PaymentDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toPaymentDTO(item))
	}
	return httptransport.ListPaymentsResponse{Payments: dtos}, nil
}

func toPaymentDTO(payment entities.Payment) httptransport.PaymentDTO {
	return httptransport.PaymentDTO{
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
}
