// Package app contains the application setup for the storefront.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/madurajaya/storefront/internal/cart"
	"github.com/madurajaya/storefront/internal/catalog"
	"github.com/madurajaya/storefront/internal/checkout"
	"github.com/madurajaya/storefront/internal/config"
	"github.com/madurajaya/storefront/internal/nav"
	"github.com/madurajaya/storefront/internal/transport/rest"
	"github.com/madurajaya/storefront/pkg/server"
)

type Dependencies struct {
	Catalog     *catalog.Catalog
	Cart        *cart.Store
	Router      *nav.Router
	Coordinator *checkout.Coordinator
	Logger      *slog.Logger
}

// SetupDependencies wires the session-scoped storefront state: the seeded
// catalog, an empty cart, the view router and the checkout coordinator.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	cat := catalog.Default()
	cartStore := cart.NewStore(cat)
	router := nav.NewRouter(func(s nav.Section) {
		logger.Debug("Section projection refreshed", "section", s)
	})
	coordinator := checkout.NewCoordinator(cartStore, router, cfg.Shop, logger)

	return &Dependencies{
		Catalog:     cat,
		Cart:        cartStore,
		Router:      router,
		Coordinator: coordinator,
		Logger:      logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the storefront.
// Used by handler tests to set up the server with the full middleware chain.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	storefrontHandler := rest.NewHandler(deps.Catalog, deps.Cart, deps.Router, deps.Coordinator, deps.Logger)
	storefrontHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
