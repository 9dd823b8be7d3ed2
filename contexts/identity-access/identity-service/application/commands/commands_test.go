package commands

import (
	"context"
	"errors"
	"testing"

	"bookcourier/contexts/identity-access/identity-service/adapters/memory"
	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
)

func TestRegisterIdentityIdempotent(t *testing.T) {
	store := memory.NewStore()
	register := RegisterIdentityUseCase{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
	}

	first, err := register.Execute(context.Background(), RegisterIdentityCommand{
		Email:       "Reader@Example.com",
		DisplayName: "Reader",
	})
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if !first.Created {
		t.Fatal("first registration must create the identity")
	}
	if first.Identity.Role != entities.RoleUser {
		t.Fatalf("registration must force the user role, got %s", first.Identity.Role)
	}

	second, err := register.Execute(context.Background(), RegisterIdentityCommand{
		Email:       "reader@example.com",
		DisplayName: "Different Name",
	})
	if err != nil {
		t.Fatalf("repeated registration failed: %v", err)
	}
	if second.Created {
		t.Fatal("repeated registration must not create a second identity")
	}
	if second.Identity.IdentityID != first.Identity.IdentityID {
		t.Fatalf("repeated registration must return the original identity, got %s and %s",
			first.Identity.IdentityID, second.Identity.IdentityID)
	}
}

func TestRegisterIdentityRejectsInvalidEmail(t *testing.T) {
	store := memory.NewStore()
	register := RegisterIdentityUseCase{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
	}
	_, err := register.Execute(context.Background(), RegisterIdentityCommand{Email: "not-an-email"})
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got %v", err)
	}
}

func TestApplyLibrarianDuplicateConflicts(t *testing.T) {
	store := memory.NewStore()
	apply := ApplyLibrarianUseCase{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
	}

	if _, err := apply.Execute(context.Background(), ApplyLibrarianCommand{
		Email: "candidate@example.com",
		Name:  "Candidate",
	}); err != nil {
		t.Fatalf("first application failed: %v", err)
	}
	_, err := apply.Execute(context.Background(), ApplyLibrarianCommand{
		Email: "candidate@example.com",
		Name:  "Candidate Again",
	})
	if !errors.Is(err, domainerrors.ErrAlreadyApplied) {
		t.Fatalf("expected already applied, got %v", err)
	}
}

func TestDecideApplicationApprovalCascadesRole(t *testing.T) {
	store := memory.NewStore()
	register := RegisterIdentityUseCase{Repository: store, Clock: store, IDGenerator: store}
	apply := ApplyLibrarianUseCase{Repository: store, Clock: store, IDGenerator: store}
	decide := DecideApplicationUseCase{Repository: store}

	if _, err := register.Execute(context.Background(), RegisterIdentityCommand{
		Email: "candidate@example.com",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	submitted, err := apply.Execute(context.Background(), ApplyLibrarianCommand{
		Email: "candidate@example.com",
	})
	if err != nil {
		t.Fatalf("application failed: %v", err)
	}

	result, err := decide.Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: submitted.ApplicationID,
		Status:        entities.ApplicationApproved,
	})
	if err != nil {
		t.Fatalf("approval failed: %v", err)
	}
	if !result.RoleUpdated {
		t.Fatal("approval must cascade the role onto the identity")
	}

	identity, found, err := store.GetIdentityByEmail(context.Background(), "candidate@example.com")
	if err != nil || !found {
		t.Fatalf("identity lookup failed: found=%v err=%v", found, err)
	}
	if identity.Role != entities.RoleLibrarian {
		t.Fatalf("expected librarian after approval, got %s", identity.Role)
	}
}

func TestDecideApplicationRejectionLeavesRole(t *testing.T) {
	store := memory.NewStore()
	register := RegisterIdentityUseCase{Repository: store, Clock: store, IDGenerator: store}
	apply := ApplyLibrarianUseCase{Repository: store, Clock: store, IDGenerator: store}
	decide := DecideApplicationUseCase{Repository: store}

	if _, err := register.Execute(context.Background(), RegisterIdentityCommand{
		Email: "rejected@example.com",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	submitted, err := apply.Execute(context.Background(), ApplyLibrarianCommand{
		Email: "rejected@example.com",
	})
	if err != nil {
		t.Fatalf("application failed: %v", err)
	}

	result, err := decide.Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: submitted.ApplicationID,
		Status:        entities.ApplicationRejected,
	})
	if err != nil {
		t.Fatalf("rejection failed: %v", err)
	}
	if result.RoleUpdated {
		t.Fatal("rejection must not cascade a role change")
	}

	identity, _, _ := store.GetIdentityByEmail(context.Background(), "rejected@example.com")
	if identity.Role != entities.RoleUser {
		t.Fatalf("expected user role after rejection, got %s", identity.Role)
	}
}

func TestChangeRoleUnknownIdentity(t *testing.T) {
	store := memory.NewStore()
	change := ChangeRoleUseCase{Repository: store}
	_, err := change.Execute(context.Background(), ChangeRoleCommand{
		IdentityID: "missing",
		Role:       entities.RoleAdmin,
	})
	if !errors.Is(err, domainerrors.ErrIdentityNotFound) {
		t.Fatalf("expected identity not found, got %v", err)
	}
}
