package catalog

import (
	"log/slog"

	httpadapter "bookcourier/contexts/lending-core/catalog-service/adapters/http"
	"bookcourier/contexts/lending-core/catalog-service/adapters/memory"
	"bookcourier/contexts/lending-core/catalog-service/application/commands"
	"bookcourier/contexts/lending-core/catalog-service/application/queries"
	"bookcourier/contexts/lending-core/catalog-service/ports"
)

// Module is the catalog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Orders      ports.OrderCanceller
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires catalog use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateListing: commands.CreateListingUseCase{
			Repository:  deps.Repository,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		UpdateListing: commands.UpdateListingUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ChangeStatus: commands.ChangeListingStatusUseCase{
			Repository: deps.Repository,
			Orders:     deps.Orders,
			Logger:     deps.Logger,
		},
		DeleteListing: commands.DeleteListingUseCase{
			Repository: deps.Repository,
			Orders:     deps.Orders,
			Logger:     deps.Logger,
		},
		GetListing: queries.GetListingUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListPublished: queries.ListPublishedUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListByProvider: queries.ListByProviderUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListAll: queries.ListAllUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. The cascade port must still be supplied by the caller because
// it crosses module boundaries.
func NewInMemoryModule(orders ports.OrderCanceller, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Orders:      orders,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
