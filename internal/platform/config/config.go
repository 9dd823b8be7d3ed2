package config

import "os"

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName     string
	HTTPPort        string
	PostgresDSN     string
	StripeSecretKey string
	SiteOrigin      string
	GoogleAPIKey    string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "bookcourier"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	origin := os.Getenv("SITE_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return Config{
		ServiceName:     service,
		HTTPPort:        port,
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SiteOrigin:      origin,
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
	}, nil
}
