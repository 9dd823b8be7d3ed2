package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	identity "bookcourier/contexts/identity-access/identity-service"
	identitycommands "bookcourier/contexts/identity-access/identity-service/application/commands"
	identityentities "bookcourier/contexts/identity-access/identity-service/domain/entities"
	catalog "bookcourier/contexts/lending-core/catalog-service"
	order "bookcourier/contexts/lending-core/order-service"
	orderports "bookcourier/contexts/lending-core/order-service/ports"
	payment "bookcourier/contexts/lending-core/payment-service"
)

type staticListingReader struct{}

func (staticListingReader) ListingSnapshot(_ context.Context, _ string) (orderports.ListingSnapshot, bool, error) {
	return orderports.ListingSnapshot{}, false, nil
}

// newTestServer wires all four modules with in-memory adapters and seeds
// one identity per role, each reachable with the token "<role>-token".
func newTestServer(t *testing.T) *Server {
	t.Helper()

	identityModule := identity.NewInMemoryModule(nil)
	orderModule := order.NewInMemoryModule(staticListingReader{}, nil)
	catalogModule := catalog.NewInMemoryModule(orderModule.CascadeCancel, nil)
	paymentModule := payment.NewInMemoryModule(orderModule.MarkPaid, nil)

	for _, seed := range []struct {
		email string
		role  identityentities.Role
		token string
	}{
		{"reader@example.com", identityentities.RoleUser, "user-token"},
		{"shelf@example.com", identityentities.RoleLibrarian, "librarian-token"},
		{"root@example.com", identityentities.RoleAdmin, "admin-token"},
	} {
		result, err := identityModule.Handler.Register.Execute(context.Background(),
			identitycommands.RegisterIdentityCommand{Email: seed.email})
		if err != nil {
			t.Fatalf("seed identity %s failed: %v", seed.email, err)
		}
		if seed.role != identityentities.RoleUser {
			if _, err := identityModule.Store.UpdateIdentityRole(context.Background(),
				result.Identity.IdentityID, seed.role); err != nil {
				t.Fatalf("seed role %s failed: %v", seed.role, err)
			}
		}
		identityModule.Store.RegisterToken(seed.token, seed.email)
	}

	return New(identityModule, catalogModule, orderModule, paymentModule, nil, ":0")
}

func TestLivenessIsPublic(t *testing.T) {
	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBooksRequireAuthentication(t *testing.T) {
	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d body=%s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAddBookRequiresLibrarianRole(t *testing.T) {
	server := newTestServer(t)
	body, _ := json.Marshal(map[string]any{"bookName": "Gated Book", "price": 10})

	req := httptest.NewRequest(http.MethodPost, "/add-book", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for plain user, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/add-book", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer librarian-token")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for librarian, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLibrarianBooksRequireAdminRole(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/librarian-books", nil)
	req.Header.Set("Authorization", "Bearer librarian-token")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for librarian, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/librarian-books", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegistrationIsPublicAndIdempotent(t *testing.T) {
	server := newTestServer(t)
	body := []byte(`{"email":"fresh@example.com","displayName":"Fresh"}`)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first registration, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeated registration, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestOrderStatsEndpointIsPublic(t *testing.T) {
	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/librarian/order/state", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}
