package payment

import (
	"log/slog"

	httpadapter "bookcourier/contexts/lending-core/payment-service/adapters/http"
	"bookcourier/contexts/lending-core/payment-service/adapters/memory"
	"bookcourier/contexts/lending-core/payment-service/application/commands"
	"bookcourier/contexts/lending-core/payment-service/application/queries"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

// Module is the payment-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
	Gateway *memory.FakeGateway
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Gateway     ports.CheckoutGateway
	Orders      ports.OrderReconciler
	TrackingIDs ports.TrackingIDGenerator
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	SiteOrigin  string
	Logger      *slog.Logger
}

// NewModule wires payment use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateSession: commands.CreateCheckoutSessionUseCase{
			Gateway:    deps.Gateway,
			SiteOrigin: deps.SiteOrigin,
			Logger:     deps.Logger,
		},
		ConfirmPayment: commands.ConfirmPaymentUseCase{
			Repository:  deps.Repository,
			Gateway:     deps.Gateway,
			Orders:      deps.Orders,
			TrackingIDs: deps.TrackingIDs,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		ListPayments: queries.ListPaymentsUseCase{
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
// adapters and a programmable fake gateway. The order reconciler must
// still be supplied by the caller because it crosses module boundaries.
func NewInMemoryModule(orders ports.OrderReconciler, logger *slog.Logger) Module {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	module := NewModule(Dependencies{
		Repository:  store,
		Gateway:     gateway,
		Orders:      orders,
		TrackingIDs: store,
		Clock:       store,
		IDGenerator: store,
		SiteOrigin:  "http://localhost:3000",
		Logger:      logger,
	})
	module.Store = store
	module.Gateway = gateway
	return module
}
