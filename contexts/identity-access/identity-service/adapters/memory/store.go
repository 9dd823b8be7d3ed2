package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the repository, clock,
// id-generator, and token-verifier ports. It is intended for tests and
// local development wiring.
type Store struct {
	mu sync.RWMutex

	identities   map[string]entities.Identity
	applications map[string]entities.LibrarianApplication
	tokens       map[string]string

	now time.Time
}

// NewStore builds a deterministic in-memory adapter.
func NewStore() *Store {
	return &Store{
		identities:   make(map[string]entities.Identity),
		applications: make(map[string]entities.LibrarianApplication),
		tokens:       make(map[string]string),
		now:          time.Date(2025, time.January, 2, 12, 0, 0, 0, time.UTC),
	}
}

// Now returns a deterministic monotonic clock value.
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// RegisterToken maps a raw bearer token to a verified email for tests.
func (s *Store) RegisterToken(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = strings.ToLower(email)
}

// VerifyIDToken resolves a registered token; unknown tokens are unauthenticated.
func (s *Store) VerifyIDToken(_ context.Context, rawToken string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.tokens[rawToken]
	if !ok {
		return "", domainerrors.ErrUnauthenticated
	}
	return email, nil
}

func (s *Store) GetIdentityByEmail(_ context.Context, email string) (entities.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, identity := range s.identities {
		if identity.Email == email {
			return identity, true, nil
		}
	}
	return entities.Identity{}, false, nil
}

func (s *Store) GetIdentityByID(_ context.Context, identityID string) (entities.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[identityID]
	return identity, ok, nil
}

func (s *Store) InsertIdentityIfAbsent(_ context.Context, candidate entities.Identity) (bool, entities.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, identity := range s.identities {
		if identity.Email == candidate.Email {
			return false, identity, nil
		}
	}
	s.identities[candidate.IdentityID] = candidate
	return true, candidate, nil
}

func (s *Store) UpdateIdentityRole(_ context.Context, identityID string, role entities.Role) (entities.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, ok := s.identities[identityID]
	if !ok {
		return entities.Identity{}, domainerrors.ErrIdentityNotFound
	}
	identity.Role = role
	s.identities[identityID] = identity
	return identity, nil
}

func (s *Store) UpdateIdentityRoleByEmail(_ context.Context, email string, role entities.Role) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched int64
	for id, identity := range s.identities {
		if identity.Email == email {
			identity.Role = role
			s.identities[id] = identity
			matched++
		}
	}
	return matched, nil
}

func (s *Store) DeleteIdentity(_ context.Context, identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.identities[identityID]; !ok {
		return domainerrors.ErrIdentityNotFound
	}
	delete(s.identities, identityID)
	return nil
}

func (s *Store) ListIdentities(_ context.Context) ([]entities.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Identity, 0, len(s.identities))
	for _, identity := range s.identities {
		items = append(items, identity)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetApplicationByEmail(_ context.Context, email string) (entities.LibrarianApplication, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.applications {
		if app.Email == email {
			return app, true, nil
		}
	}
	return entities.LibrarianApplication{}, false, nil
}

func (s *Store) GetApplicationByID(_ context.Context, applicationID string) (entities.LibrarianApplication, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[applicationID]
	return app, ok, nil
}

func (s *Store) InsertApplicationIfAbsent(_ context.Context, candidate entities.LibrarianApplication) (bool, entities.LibrarianApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.applications {
		if app.Email == candidate.Email {
			return false, app, nil
		}
	}
	s.applications[candidate.ApplicationID] = candidate
	return true, candidate, nil
}

func (s *Store) UpdateApplicationStatus(_ context.Context, applicationID string, status entities.ApplicationStatus) (entities.LibrarianApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return entities.LibrarianApplication{}, domainerrors.ErrApplicationNotFound
	}
	app.Status = status
	s.applications[applicationID] = app
	return app, nil
}

func (s *Store) DeleteApplication(_ context.Context, applicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[applicationID]; !ok {
		return domainerrors.ErrApplicationNotFound
	}
	delete(s.applications, applicationID)
	return nil
}

func (s *Store) ListApplications(_ context.Context, filter ports.ApplicationFilter) ([]entities.LibrarianApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.LibrarianApplication, 0, len(s.applications))
	for _, app := range s.applications {
		if filter.Status != "" && app.Status != filter.Status {
			continue
		}
		items = append(items, app)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
