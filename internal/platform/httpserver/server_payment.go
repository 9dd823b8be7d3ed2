package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	paymenterrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	paymenthttp "bookcourier/contexts/lending-core/payment-service/transport/http"
)

func (s *Server) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req paymenthttp.CreateCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePaymentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payments.Handler.CreateSessionHandler(r.Context(), email, req)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writePaymentError(w, http.StatusBadRequest, "missing_session_id", "session_id query parameter is required")
		return
	}

	resp, err := s.payments.Handler.ConfirmPaymentHandler(r.Context(), sessionID, email)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	resp, err := s.payments.Handler.ListPaymentsHandler(r.Context(), email)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePaymentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymenterrors.ErrPaymentNotFound):
		writePaymentError(w, http.StatusNotFound, "payment_not_found", err.Error())
	case errors.Is(err, paymenterrors.ErrGatewayUnavailable):
		writePaymentError(w, http.StatusServiceUnavailable, "gateway_unavailable", err.Error())
	case errors.Is(err, paymenterrors.ErrMissingOrderContext):
		writePaymentError(w, http.StatusBadGateway, "gateway_response_invalid", err.Error())
	case errors.Is(err, paymenterrors.ErrInvalidPayment):
		writePaymentError(w, http.StatusBadRequest, "invalid_payment", err.Error())
	default:
		writePaymentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePaymentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, paymenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
