// Command profile-proxy serves the public directory and business profiles
// through the caching client: reads hit the in-memory store after warmup,
// so the backend sees each resource once until something mutates it.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aivault/profile-client/pkg/client"
	"github.com/aivault/profile-client/pkg/logging"
	"github.com/aivault/profile-client/pkg/profile"
	"github.com/aivault/profile-client/pkg/warmup"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logging.Setup(logging.DefaultConfig())
		bootLogger := logging.NewLogger("profile-proxy")
		bootLogger.Fatal().Err(err).Msg("Configuration error")
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.PrettyLogs,
		Output: os.Stderr,
	})
	logger := logging.NewLogger("profile-proxy")

	c, err := client.New(client.DefaultConfig(cfg.BackendURL))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create profile client")
	}
	api := profile.New(c)

	warmCaches(cfg, c, logger)

	e := newServer(api)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()
	logger.Info().
		Str("port", cfg.Port).
		Str("backend", cfg.BackendURL).
		Msg("Profile proxy started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
	logger.Info().Msg("Profile proxy stopped")
}

// warmCaches prefills the store for the configured businesses plus the
// shared directory view so the first requests after startup never block on
// the backend.
func warmCaches(cfg *ProxyConfig, c *client.Client, logger zerolog.Logger) {
	targets := []warmup.Target{
		{Kind: client.KindDirectory, Path: "/business/directory-view"},
	}
	for _, businessID := range cfg.Warmup.BusinessIDs {
		targets = append(targets, warmup.BusinessTargets(businessID)...)
	}

	warmer := warmup.New(c, warmup.Config{
		MaxConcurrency: cfg.Warmup.MaxConcurrency,
		Timeout:        time.Duration(cfg.Warmup.TimeoutSeconds) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := warmer.Warm(ctx, targets); err != nil {
		logger.Warn().Err(err).Msg("Cache warmup incomplete")
	}
}

// newServer wires the routes over api.
func newServer(api *profile.API) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/healthz", healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/public/directory", directoryHandler(api))
	e.GET("/public/business/:id", businessHandler(api))

	return e
}

func healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// directoryHandler serves the aggregated directory view. The store answers
// repeat requests; only the first request after startup or a mutation
// reaches the backend.
func directoryHandler(api *profile.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := api.Directory(c.Request().Context())
		if err != nil {
			return backendError(c, err)
		}
		return c.JSON(http.StatusOK, entries)
	}
}

func businessHandler(api *profile.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		biz, err := api.Business(c.Request().Context(), c.Param("id"))
		if err != nil {
			return backendError(c, err)
		}
		return c.JSON(http.StatusOK, biz)
	}
}

// backendError maps client errors onto proxy responses: backend statuses
// and bodies pass through, anything else is a bad gateway.
func backendError(c echo.Context, err error) error {
	if apiErr, ok := client.AsAPIError(err); ok {
		if apiErr.Body != "" {
			return c.JSONBlob(apiErr.StatusCode, []byte(apiErr.Body))
		}
		return c.NoContent(apiErr.StatusCode)
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"detail": err.Error()})
}
