package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	identity "bookcourier/contexts/identity-access/identity-service"
	"bookcourier/contexts/identity-access/identity-service/adapters/googleauth"
	identitypostgres "bookcourier/contexts/identity-access/identity-service/adapters/postgres"
	catalog "bookcourier/contexts/lending-core/catalog-service"
	catalogpostgres "bookcourier/contexts/lending-core/catalog-service/adapters/postgres"
	catalogentities "bookcourier/contexts/lending-core/catalog-service/domain/entities"
	catalogports "bookcourier/contexts/lending-core/catalog-service/ports"
	order "bookcourier/contexts/lending-core/order-service"
	orderpostgres "bookcourier/contexts/lending-core/order-service/adapters/postgres"
	orderports "bookcourier/contexts/lending-core/order-service/ports"
	payment "bookcourier/contexts/lending-core/payment-service"
	paymentpostgres "bookcourier/contexts/lending-core/payment-service/adapters/postgres"
	"bookcourier/contexts/lending-core/payment-service/adapters/stripe"
	"bookcourier/contexts/lending-core/payment-service/adapters/tracking"
	"bookcourier/internal/platform/config"
	"bookcourier/internal/platform/db"
	"bookcourier/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	identityRepo := identitypostgres.NewRepository(pg.DB, logger)
	identityModule := identity.NewModule(identity.Dependencies{
		Repository:  identityRepo,
		Verifier:    googleauth.NewVerifier(cfg.GoogleAPIKey, logger),
		Clock:       identitypostgres.SystemClock{},
		IDGenerator: identitypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	orderRepo := orderpostgres.NewRepository(pg.DB, logger)

	orderModule := order.NewModule(order.Dependencies{
		Repository:  orderRepo,
		Listings:    listingReader{listings: catalogRepo},
		Clock:       orderpostgres.SystemClock{},
		IDGenerator: orderpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	catalogModule := catalog.NewModule(catalog.Dependencies{
		Repository:  catalogRepo,
		Orders:      orderModule.CascadeCancel,
		Clock:       catalogpostgres.SystemClock{},
		IDGenerator: catalogpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	paymentModule := payment.NewModule(payment.Dependencies{
		Repository:  paymentpostgres.NewRepository(pg.DB, logger),
		Gateway:     stripe.NewClient(cfg.StripeSecretKey, logger),
		Orders:      orderModule.MarkPaid,
		TrackingIDs: tracking.NewGenerator(),
		Clock:       paymentpostgres.SystemClock{},
		IDGenerator: paymentpostgres.UUIDGenerator{},
		SiteOrigin:  cfg.SiteOrigin,
		Logger:      logger,
	})

	server := httpserver.New(
		identityModule,
		catalogModule,
		orderModule,
		paymentModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// listingReader bridges the catalog repository into the order context's
// read port. It lives here so neither context imports the other.
type listingReader struct {
	listings catalogports.Repository
}

func (r listingReader) ListingSnapshot(ctx context.Context, listingID string) (orderports.ListingSnapshot, bool, error) {
	listing, found, err := r.listings.GetListing(ctx, listingID)
	if err != nil || !found {
		return orderports.ListingSnapshot{}, false, err
	}
	return orderports.ListingSnapshot{
		ListingID:     listing.ListingID,
		ProviderEmail: listing.ProviderEmail,
		BookName:      listing.BookName,
		Price:         listing.Price,
		Published:     listing.BookStatus == catalogentities.BookPublished,
	}, true, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
