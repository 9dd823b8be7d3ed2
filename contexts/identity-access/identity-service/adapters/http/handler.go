package httpadapter

import (
	"context"
	"log/slog"

	application "bookcourier/contexts/identity-access/identity-service/application"
	"bookcourier/contexts/identity-access/identity-service/application/commands"
	"bookcourier/contexts/identity-access/identity-service/application/queries"
	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	httptransport "bookcourier/contexts/identity-access/identity-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Register          commands.RegisterIdentityUseCase
	ChangeRole        commands.ChangeRoleUseCase
	DeleteIdentity    commands.DeleteIdentityUseCase
	ApplyLibrarian    commands.ApplyLibrarianUseCase
	DecideApplication commands.DecideApplicationUseCase
	DeleteApplication commands.DeleteApplicationUseCase
	GetRole           queries.GetRoleUseCase
	RequireRole       queries.RequireRoleUseCase
	ListIdentities    queries.ListIdentitiesUseCase
	ListApplications  queries.ListApplicationsUseCase
	Logger            *slog.Logger
}

// RegisterHandler stores a self-registered identity with the user role.
func (h Handler) RegisterHandler(ctx context.Context, request httptransport.RegisterIdentityRequest) (httptransport.RegisterIdentityResponse, error) {
	result, err := h.Register.Execute(ctx, commands.RegisterIdentityCommand{
		Email:       request.Email,
		DisplayName: request.DisplayName,
		PhotoURL:    request.PhotoURL,
	})
	if err != nil {
		return httptransport.RegisterIdentityResponse{}, err
	}

	response := httptransport.RegisterIdentityResponse{
		Identity: toIdentityDTO(result.Identity),
		Created:  result.Created,
	}
	if !result.Created {
		response.Message = "user already exist"
	}
	return response, nil
}

// RoleHandler resolves the display role for an email, defaulting to user.
func (h Handler) RoleHandler(ctx context.Context, email string) (httptransport.RoleResponse, error) {
	role, err := h.GetRole.Execute(ctx, queries.GetRoleQuery{Email: email})
	if err != nil {
		return httptransport.RoleResponse{}, err
	}
	return httptransport.RoleResponse{Role: string(role)}, nil
}

// RequireRoleHandler is the role guard used by the HTTP server before
// admin/librarian handlers run.
func (h Handler) RequireRoleHandler(ctx context.Context, email string, role entities.Role) error {
	return h.RequireRole.Execute(ctx, queries.RequireRoleQuery{Email: email, Role: role})
}

// ChangeRoleHandler applies an admin role change.
func (h Handler) ChangeRoleHandler(ctx context.Context, identityID string, request httptransport.ChangeRoleRequest) (httptransport.IdentityDTO, error) {
	updated, err := h.ChangeRole.Execute(ctx, commands.ChangeRoleCommand{
		IdentityID: identityID,
		Role:       entities.Role(request.Role),
	})
	if err != nil {
		return httptransport.IdentityDTO{}, err
	}
	return toIdentityDTO(updated), nil
}

// DeleteIdentityHandler removes an identity record.
func (h Handler) DeleteIdentityHandler(ctx context.Context, identityID string) error {
	return h.DeleteIdentity.Execute(ctx, commands.DeleteIdentityCommand{IdentityID: identityID})
}

// ListIdentitiesHandler returns all identities.
func (h Handler) ListIdentitiesHandler(ctx context.Context) (httptransport.ListIdentitiesResponse, error) {
	items, err := h.ListIdentities.Execute(ctx)
	if err != nil {
		return httptransport.ListIdentitiesResponse{}, err
	}
	dtos := make([]httptransport.IdentityDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toIdentityDTO(item))
	}
	return httptransport.ListIdentitiesResponse{Identities: dtos}, nil
}

// ApplyLibrarianHandler records a provider application for the verified caller.
func (h Handler) ApplyLibrarianHandler(ctx context.Context, email string, request httptransport.ApplyLibrarianRequest) (httptransport.ApplicationDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http librarian application received",
		"event", "identity_http_apply_received",
		"module", "identity-access/identity-service",
		"layer", "transport",
		"email", email,
	)

	created, err := h.ApplyLibrarian.Execute(ctx, commands.ApplyLibrarianCommand{
		Email:      email,
		Name:       request.Name,
		Experience: request.Experience,
	})
	if err != nil {
		return httptransport.ApplicationDTO{}, err
	}
	return toApplicationDTO(created), nil
}

// ListApplicationsHandler lists applications, optionally filtered by status.
func (h Handler) ListApplicationsHandler(ctx context.Context, status string) (httptransport.ListApplicationsResponse, error) {
	items, err := h.ListApplications.Execute(ctx, queries.ListApplicationsQuery{
		Status: entities.ApplicationStatus(status),
	})
	if err != nil {
		return httptransport.ListApplicationsResponse{}, err
	}
	dtos := make([]httptransport.ApplicationDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toApplicationDTO(item))
	}
	return httptransport.ListApplicationsResponse{Applications: dtos}, nil
}

// DecideApplicationHandler approves or rejects an application.
func (h Handler) DecideApplicationHandler(ctx context.Context, applicationID string, request httptransport.DecideApplicationRequest) (httptransport.DecideApplicationResponse, error) {
	result, err := h.DecideApplication.Execute(ctx, commands.DecideApplicationCommand{
		ApplicationID: applicationID,
		Status:        entities.ApplicationStatus(request.Status),
	})
	if err != nil {
		return httptransport.DecideApplicationResponse{}, err
	}
	return httptransport.DecideApplicationResponse{
		Application: toApplicationDTO(result.Application),
		RoleUpdated: result.RoleUpdated,
	}, nil
}

// DeleteApplicationHandler removes an application record.
func (h Handler) DeleteApplicationHandler(ctx context.Context, applicationID string) error {
	return h.DeleteApplication.Execute(ctx, commands.DeleteApplicationCommand{ApplicationID: applicationID})
}

func toIdentityDTO(identity entities.Identity) httptransport.IdentityDTO {
	return httptransport.IdentityDTO{
		IdentityID:  identity.IdentityID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		Role:        string(identity.Role),
		CreatedAt:   identity.CreatedAt,
	}
}

func toApplicationDTO(app entities.LibrarianApplication) httptransport.ApplicationDTO {
	return httptransport.ApplicationDTO{
		ApplicationID: app.ApplicationID,
		Email:         app.Email,
		Name:          app.Name,
		Experience:    app.Experience,
		Status:        string(app.Status),
		CreatedAt:     app.CreatedAt,
	}
}
