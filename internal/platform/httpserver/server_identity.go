package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	identityentities "bookcourier/contexts/identity-access/identity-service/domain/entities"
	identityerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	identityhttp "bookcourier/contexts/identity-access/identity-service/transport/http"
)

func (s *Server) handleRegisterIdentity(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.RegisterIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleListIdentities(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	resp, err := s.identity.Handler.ListIdentitiesHandler(r.Context())
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	resp, err := s.identity.Handler.RoleHandler(r.Context(), r.PathValue("email"))
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}

	var req identityhttp.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.ChangeRoleHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteIdentity(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}
	if err := s.identity.Handler.DeleteIdentityHandler(r.Context(), r.PathValue("id")); err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleApplyLibrarian(w http.ResponseWriter, r *http.Request) {
	email, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req identityhttp.ApplyLibrarianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.ApplyLibrarianHandler(r.Context(), email, req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	resp, err := s.identity.Handler.ListApplicationsHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDecideApplication(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}

	var req identityhttp.DecideApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.DecideApplicationHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, identityentities.RoleAdmin); !ok {
		return
	}
	if err := s.identity.Handler.DeleteApplicationHandler(r.Context(), r.PathValue("id")); err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeIdentityDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrIdentityNotFound):
		writeIdentityError(w, http.StatusNotFound, "identity_not_found", err.Error())
	case errors.Is(err, identityerrors.ErrApplicationNotFound):
		writeIdentityError(w, http.StatusNotFound, "application_not_found", err.Error())
	case errors.Is(err, identityerrors.ErrAlreadyApplied):
		writeIdentityError(w, http.StatusConflict, "already_applied", err.Error())
	case errors.Is(err, identityerrors.ErrInvalidEmail),
		errors.Is(err, identityerrors.ErrInvalidRole),
		errors.Is(err, identityerrors.ErrInvalidApplicationStatus):
		writeIdentityError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, identityerrors.ErrForbidden):
		writeIdentityError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, identityerrors.ErrUnauthenticated):
		writeIdentityError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, identityerrors.ErrProviderUnavailable):
		writeIdentityError(w, http.StatusServiceUnavailable, "identity_provider_unavailable", err.Error())
	default:
		writeIdentityError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeIdentityError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, identityhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
