package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"telemetry-gateway/internal/platform/config"
	"telemetry-gateway/internal/platform/logger"
	"telemetry-gateway/internal/platform/metrics"

	telemetryHttp "telemetry-gateway/internal/telemetry/adapters/http/fiber"
	"telemetry-gateway/internal/telemetry/adapters/upstream"
	"telemetry-gateway/internal/telemetry/core/ports"
	telemetryUsecase "telemetry-gateway/internal/telemetry/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "telemetry-gateway/docs"
)

// @title RelaySMS Telemetry Gateway API
// @version 1.0
// @description Aggregates signup, retained and publication metrics from the RelaySMS vault and publisher.
// @BasePath /
func main() {
	// .env is optional; real deployments use the environment.
	_ = godotenv.Load()

	// Config
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("", "")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	m := metrics.New()

	// One pooled client per upstream service
	vault, err := upstream.NewVaultClient(upstream.Options{
		BaseURL:    cfg.VaultURL,
		Timeout:    cfg.UpstreamTimeout,
		HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
		Logger:     &log,
		Metrics:    m,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create vault client")
	}

	var publications ports.PublicationsReaderPort
	var publicationsUC telemetryHttp.GetPublicationsUseCase
	if cfg.PublisherURL != "" {
		publisher, err := upstream.NewPublisherClient(upstream.Options{
			BaseURL:    cfg.PublisherURL,
			Timeout:    cfg.UpstreamTimeout,
			HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
			Logger:     &log,
			Metrics:    m,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create publisher client")
		}
		publications = publisher
		publicationsUC = telemetryUsecase.NewGetPublicationsUseCase(publisher)
	} else {
		log.Info().Msg("RELAYSMS_PUBLISHER_DOMAIN not set, publication metrics disabled")
	}

	// Usecases
	summaryUC := telemetryUsecase.NewGetSummaryUseCase(vault, vault, publications)
	signupUC := telemetryUsecase.NewGetSignupUseCase(vault)
	retainedUC := telemetryUsecase.NewGetRetainedUseCase(vault)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "telemetry-gateway",
		DisableStartupMessage: true,
		ErrorHandler:          telemetryHttp.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(telemetryHttp.RequestContext(log, m))

	// metrics endpoints
	handler := telemetryHttp.NewMetricsHandler(telemetryHttp.UseCases{
		Summary:      summaryUC,
		Signup:       signupUC,
		Retained:     retainedUC,
		Publications: publicationsUC,
	}, log)
	handler.Register(app.Group("/v1", telemetryHttp.SecurityHeaders()))

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("vault", cfg.VaultURL).
		Str("publisher", cfg.PublisherURL).
		Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
