// ABOUTME: Main entry point for the listing website server
// ABOUTME: Wires together configuration, logging, cache, catalog, views and handlers and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"realtorist-web/api"
	"realtorist-web/api/handlers"
	"realtorist-web/core/interfaces"
	"realtorist-web/core/listings"
	"realtorist-web/core/render"
	"realtorist-web/core/urls"
	"realtorist-web/infrastructure/cache/memory"
	"realtorist-web/infrastructure/cache/redis"
	applogger "realtorist-web/infrastructure/logger/logrus"
	"realtorist-web/pkg/config"
	"realtorist-web/pkg/featureflags"
	"realtorist-web/web"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := applogger.New(applogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting listing website", map[string]interface{}{
		"port":       cfg.Server.Port,
		"base_path":  cfg.Server.BasePath,
		"cache_type": cfg.Cache.Type,
	})

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	catalog, err := listings.LoadCatalog(cfg.Site.CatalogPath)
	if err != nil {
		logger.Error("Failed to load listing catalog", map[string]interface{}{
			"path":  cfg.Site.CatalogPath,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	builder := urls.NewBuilder(urls.Options{
		ListingRoute:      cfg.Site.ListingRoute,
		BasePath:          cfg.Server.BasePath,
		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	})
	renderer := render.NewViewRenderService(web.Views, render.Funcs(builder), logger)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
	})

	handlers.NewTextHandler(logger).RegisterRoutes(humaAPI)
	handlers.NewShareHandler(catalog, builder, cfg.Site.ExcerptLength).RegisterRoutes(humaAPI)

	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}
	pages := handlers.NewPageHandler(catalog, renderer, builder, deps, handlers.PageConfig{
		ExcerptLength: cfg.Site.ExcerptLength,
		PageSize:      cfg.Site.PageSize,
		FragmentTTL:   cfg.Cache.FragmentTTL,
	})
	if basePath := strings.TrimRight(cfg.Server.BasePath, "/"); basePath != "" {
		router.Route(basePath, func(r chi.Router) {
			pages.RegisterRoutes(r, cfg.Site.ListingRoute)
		})
	} else {
		pages.RegisterRoutes(router, cfg.Site.ListingRoute)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured fragment cache, falling back to memory
// when Redis is unreachable
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	if cfg.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, func() { _ = redisCache.Close() }
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Memory.CleanupInterval), func() {}
}
