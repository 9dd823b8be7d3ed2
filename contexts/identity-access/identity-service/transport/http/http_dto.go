package httptransport

import "time"

type RegisterIdentityRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

type IdentityDTO struct {
	IdentityID  string    `json:"identity_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type RegisterIdentityResponse struct {
	Identity IdentityDTO `json:"identity"`
	Created  bool        `json:"created"`
	Message  string      `json:"message,omitempty"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type ListIdentitiesResponse struct {
	Identities []IdentityDTO `json:"identities"`
}

type ApplyLibrarianRequest struct {
	Name       string `json:"name,omitempty"`
	Experience string `json:"experience,omitempty"`
}

type ApplicationDTO struct {
	ApplicationID string    `json:"application_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
}

type DecideApplicationRequest struct {
	Status string `json:"status"`
}

type DecideApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
	RoleUpdated bool           `json:"role_updated"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
