package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	identityentities "bookcourier/contexts/identity-access/identity-service/domain/entities"
	catalogerrors "bookcourier/contexts/lending-core/catalog-service/domain/errors"
	cataloghttp "bookcourier/contexts/lending-core/catalog-service/transport/http"
)

func (s *Server) handleListOwnListings(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireRole(w, r, identityentities.RoleLibrarian)
	if !ok {
		return
	}
	resp, err := s.catalog.Handler.ListByProviderHandler(r.Context(), email)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireRole(w, r, identityentities.RoleLibrarian)
	if !ok {
		return
	}

	var req cataloghttp.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.CreateListingHandler(r.Context(), email, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireRole(w, r, identityentities.RoleLibrarian)
	if !ok {
		return
	}

	var req cataloghttp.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdateListingHandler(
		r.Context(),
		r.PathValue("id"),
		email,
		s.isAdmin(r, email),
		req,
	)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAllListings(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}
	resp, err := s.catalog.Handler.ListAllHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeListingStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}

	var req cataloghttp.ChangeListingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.ChangeStatusHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}
	resp, err := s.catalog.Handler.DeleteListingHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPublished(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	resp, err := s.catalog.Handler.ListPublishedHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	resp, err := s.catalog.Handler.GetListingHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrListingNotFound):
		writeCatalogError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrForbidden):
		writeCatalogError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidListing),
		errors.Is(err, catalogerrors.ErrInvalidPrice),
		errors.Is(err, catalogerrors.ErrInvalidListingStatus):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
