package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	identity "bookcourier/contexts/identity-access/identity-service"
	identityentities "bookcourier/contexts/identity-access/identity-service/domain/entities"
	identityerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	catalog "bookcourier/contexts/lending-core/catalog-service"
	order "bookcourier/contexts/lending-core/order-service"
	payment "bookcourier/contexts/lending-core/payment-service"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "bookcourier/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	identity identity.Module
	catalog  catalog.Module
	orders   order.Module
	payments payment.Module
}

func New(
	identityModule identity.Module,
	catalogModule catalog.Module,
	orderModule order.Module,
	paymentModule payment.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		identity: identityModule,
		catalog:  catalogModule,
		orders:   orderModule,
		payments: paymentModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleLiveness)

	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /users", s.handleRegisterIdentity)
	s.mux.HandleFunc("GET /users", s.handleListIdentities)
	s.mux.HandleFunc("GET /users/{email}/role", s.handleGetRole)
	s.mux.HandleFunc("PATCH /users/{id}", s.handleChangeRole)
	s.mux.HandleFunc("DELETE /admin/user/{id}", s.handleDeleteIdentity)
	s.mux.HandleFunc("POST /librarians", s.handleApplyLibrarian)
	s.mux.HandleFunc("GET /librarians", s.handleListApplications)
	s.mux.HandleFunc("PATCH /librarians/{id}", s.handleDecideApplication)
	s.mux.HandleFunc("DELETE /librarians/{id}", s.handleDeleteApplication)

	s.mux.HandleFunc("GET /add-book", s.handleListOwnListings)
	s.mux.HandleFunc("POST /add-book", s.handleCreateListing)
	s.mux.HandleFunc("PATCH /add-book/{id}", s.handleUpdateListing)
	s.mux.HandleFunc("GET /librarian-books", s.handleListAllListings)
	s.mux.HandleFunc("PATCH /librarian-books/{id}/status", s.handleChangeListingStatus)
	s.mux.HandleFunc("DELETE /admin/librarian-book/{id}", s.handleDeleteListing)
	s.mux.HandleFunc("GET /books", s.handleListPublished)
	s.mux.HandleFunc("GET /books/{id}", s.handleGetListing)

	s.mux.HandleFunc("GET /orders", s.handleListBuyerOrders)
	s.mux.HandleFunc("GET /librarian/orders", s.handleListProviderOrders)
	s.mux.HandleFunc("POST /orders/{listingId}", s.handleCreateOrder)
	s.mux.HandleFunc("PATCH /orders/{id}/status", s.handleTransitionDelivery)
	s.mux.HandleFunc("PATCH /user/order-cancel/{id}", s.handleBuyerCancelOrder)
	s.mux.HandleFunc("PATCH /user/order-remove/{id}", s.handleHideOrderForBuyer)
	s.mux.HandleFunc("PATCH /librarians/user-order-remove/{id}", s.handleHideOrderForProvider)
	s.mux.HandleFunc("GET /payment/{id}", s.handleGetOrderForPayment)
	s.mux.HandleFunc("GET /librarian/order/state", s.handleOrderStats)

	s.mux.HandleFunc("POST /create-checkout-session", s.handleCreateCheckoutSession)
	s.mux.HandleFunc("PATCH /payment-success", s.handleConfirmPayment)
	s.mux.HandleFunc("GET /payment-history", s.handleListPayments)
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("book courier server is running"))
}

// authenticate resolves the verified caller email from the bearer token.
func (s *Server) authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", identityerrors.ErrUnauthenticated
	}
	return s.identity.Verifier.VerifyIDToken(r.Context(), token)
}

// requireAuth authenticates and writes the error response on failure.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, err := s.authenticate(r)
	if err != nil {
		writeAuthError(w, err)
		return "", false
	}
	return email, true
}

// requireRole authenticates, then gates on the stored role. Role lookup is
// a second store round-trip so a role change takes effect immediately.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, role identityentities.Role) (string, bool) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return "", false
	}
	if err := s.identity.Handler.RequireRoleHandler(r.Context(), email, role); err != nil {
		writeAuthError(w, err)
		return "", false
	}
	return email, true
}

// isAdmin resolves the stored-role admin bit for ownership overrides.
func (s *Server) isAdmin(r *http.Request, email string) bool {
	resp, err := s.identity.Handler.RoleHandler(r.Context(), email)
	return err == nil && resp.Role == string(identityentities.RoleAdmin)
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, identityerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, identityerrors.ErrProviderUnavailable):
		writeError(w, http.StatusServiceUnavailable, "identity_provider_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
