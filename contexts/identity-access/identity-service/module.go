package identity

import (
	"log/slog"

	httpadapter "bookcourier/contexts/identity-access/identity-service/adapters/http"
	"bookcourier/contexts/identity-access/identity-service/adapters/memory"
	"bookcourier/contexts/identity-access/identity-service/application/commands"
	"bookcourier/contexts/identity-access/identity-service/application/queries"
	"bookcourier/contexts/identity-access/identity-service/ports"
)

// Module is the identity-service composition root exposed to runtime wiring.
type Module struct {
	Handler  httpadapter.Handler
	Verifier ports.TokenVerifier
	Store    *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Verifier    ports.TokenVerifier
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires identity use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Register: commands.RegisterIdentityUseCase{
			Repository:  deps.Repository,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		ChangeRole: commands.ChangeRoleUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		DeleteIdentity: commands.DeleteIdentityUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ApplyLibrarian: commands.ApplyLibrarianUseCase{
			Repository:  deps.Repository,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		DecideApplication: commands.DecideApplicationUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		DeleteApplication: commands.DeleteApplicationUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		GetRole: queries.GetRoleUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		RequireRole: queries.RequireRoleUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListIdentities: queries.ListIdentitiesUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListApplications: queries.ListApplicationsUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler:  handler,
		Verifier: deps.Verifier,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Verifier:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
