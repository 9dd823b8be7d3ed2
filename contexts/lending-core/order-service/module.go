package order

import (
	"log/slog"

	httpadapter "bookcourier/contexts/lending-core/order-service/adapters/http"
	"bookcourier/contexts/lending-core/order-service/adapters/memory"
	"bookcourier/contexts/lending-core/order-service/application/commands"
	"bookcourier/contexts/lending-core/order-service/application/queries"
	"bookcourier/contexts/lending-core/order-service/ports"
)

// Module is the order-service composition root exposed to runtime wiring.
// MarkPaid and CascadeCancel are not reachable over HTTP: they exist for
// the payment and catalog services to call through their own ports.
type Module struct {
	Handler       httpadapter.Handler
	MarkPaid      commands.MarkOrderPaidUseCase
	CascadeCancel commands.CascadeCancelUseCase
	Store         *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Listings    ports.ListingReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires order use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateOrder: commands.CreateOrderUseCase{
			Repository:  deps.Repository,
			Listings:    deps.Listings,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		TransitionDelivery: commands.TransitionDeliveryUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		HideForBuyer: commands.HideForBuyerUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		HideForProvider: commands.HideForProviderUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		GetOrder: queries.GetOrderUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListBuyerOrders: queries.ListBuyerOrdersUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListProviderOrders: queries.ListProviderOrdersUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		OrderStats: queries.CountByProviderVisibilityUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
		MarkPaid: commands.MarkOrderPaidUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		CascadeCancel: commands.CascadeCancelUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. The listing reader must still be supplied by the caller because
// it crosses module boundaries.
func NewInMemoryModule(listings ports.ListingReader, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Listings:    listings,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
