package entities

import "time"

// ApplicationStatus is the closed set of librarian-application states.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsValid reports whether the status belongs to the closed set.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// LibrarianApplication is a user's request to become a book provider.
// At most one application exists per email.
type LibrarianApplication struct {
	ApplicationID string            `json:"application_id"`
	Email         string            `json:"email"`
	Name          string            `json:"name,omitempty"`
	Experience    string            `json:"experience,omitempty"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}
