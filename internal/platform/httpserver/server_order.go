package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	identityentities "bookcourier/contexts/identity-access/identity-service/domain/entities"
	orderentities "bookcourier/contexts/lending-core/order-service/domain/entities"
	ordererrors "bookcourier/contexts/lending-core/order-service/domain/errors"
	orderhttp "bookcourier/contexts/lending-core/order-service/transport/http"
)

func (s *Server) handleListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.ListBuyerOrdersHandler(r.Context(), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListProviderOrders(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireRole(w, r, identityentities.RoleLibrarian)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.ListProviderOrdersHandler(r.Context(), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	req := orderhttp.CreateOrderRequest{ListingID: r.PathValue("listingId")}
	if r.Body != nil && r.ContentLength != 0 {
		var body orderhttp.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
		req.Address = body.Address
	}

	resp, err := s.orders.Handler.CreateOrderHandler(r.Context(), email, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if !resp.Available {
		// business rejection, not a transport failure
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleTransitionDelivery(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req orderhttp.TransitionDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.orders.Handler.TransitionDeliveryHandler(
		r.Context(),
		r.PathValue("id"),
		email,
		s.isAdmin(r, email),
		req.DeliveryStatus,
	)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBuyerCancelOrder(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.TransitionDeliveryHandler(
		r.Context(),
		r.PathValue("id"),
		email,
		false,
		string(orderentities.DeliveryCancelledSelf),
	)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHideOrderForBuyer(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.HideForBuyerHandler(r.Context(), r.PathValue("id"), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHideOrderForProvider(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireRole(w, r, identityentities.RoleLibrarian)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.HideForProviderHandler(r.Context(), r.PathValue("id"), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOrderForPayment(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	resp, err := s.orders.Handler.GetOrderHandler(r.Context(), r.PathValue("id"), email)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOrderStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.orders.Handler.OrderStatsHandler(r.Context())
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		writeOrderError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, ordererrors.ErrListingNotFound):
		writeOrderError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, ordererrors.ErrForbidden):
		writeOrderError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidTransition):
		writeOrderError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidOrder):
		writeOrderError(w, http.StatusBadRequest, "invalid_order", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
