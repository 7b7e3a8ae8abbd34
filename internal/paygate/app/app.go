package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/paygate/internal/paygate/http"
	"github.com/aussiebroadwan/paygate/internal/paygate/lightning"
	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/internal/paygate/store/drivers/sqlite"
	"github.com/aussiebroadwan/paygate/pkg/cryptox"
	"github.com/aussiebroadwan/paygate/pkg/jwtx"
	"github.com/aussiebroadwan/paygate/pkg/l402"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the paygate service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	node   lightning.NodeClient
	lnurl  lightning.AddressClient
	codec  *l402.Codec
	signer *jwtx.Signer

	// Services
	documentService     *service.DocumentService
	gateService         *service.GateService
	verifyService       *service.VerifyService
	publishService      *service.PublishService
	publisherService    *service.PublisherService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "paygate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		codec:  l402.NewCodec([]byte(cfg.L402Secret)),
		signer: jwtx.NewSigner([]byte(cfg.SessionSecret), cfg.Issuer),
	}

	// Set pepper path for API key hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initLightning(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	if err := app.bootstrapPublisher(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("paygate starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down paygate...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.node.Close(); err != nil {
		app.logger.Error("error closing node client", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("paygate stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initLightning wires the two invoice sources. A missing node configuration
// only disables the platform path; creator documents keep working.
func (app *Application) initLightning() error {
	if app.cfg.LNDHost == "" {
		if app.cfg.Env == "prod" {
			return fmt.Errorf("PAYGATE_LND_HOST is required in prod")
		}
		app.logger.Warn("no platform lightning node configured, platform-paid documents will fail")
		app.node = lightning.DisabledNodeClient{}
	} else {
		node, err := lightning.NewLNDClient(lightning.LNDConfig{
			Host:         app.cfg.LNDHost,
			TLSCertPath:  app.cfg.LNDTLSCertPath,
			MacaroonPath: app.cfg.LNDMacaroonPath,
			Timeout:      app.cfg.LNDTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to lightning node: %w", err)
		}
		app.node = node
		app.logger.Info("connected to lightning node", "host", app.cfg.LNDHost)
	}

	app.lnurl = lightning.NewLNURLClient(lightning.LNURLConfig{
		Network:       app.cfg.LightningNetwork,
		Timeout:       app.cfg.LNURLTimeout,
		AllowInsecure: app.cfg.LNURLAllowInsecure,
	})
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	challenges := &service.ChallengeService{
		Codec: app.codec,
		Node:  app.node,
		LNURL: app.lnurl,
	}
	app.verifyService = &service.VerifyService{
		Codec: app.codec,
		Node:  app.node,
		LNURL: app.lnurl,
	}
	app.gateService = &service.GateService{
		Challenges: challenges,
		Verifier:   app.verifyService,
	}

	app.documentService = &service.DocumentService{Store: app.db}
	app.publishService = &service.PublishService{
		Store: app.db,
		Gate:  app.gateService,
		Fees: service.FeeSchedule{
			BaseSats:   app.cfg.ListingFeeBaseSats,
			PercentBps: app.cfg.ListingFeePercentBps,
		},
		PendingTTL: app.cfg.PendingPublishTTL,
	}
	app.publisherService = &service.PublisherService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.cfg.SecretConfigured(),
		app.db,
		app.logger,
	)

	router.DocumentService = app.documentService
	router.GateService = app.gateService
	router.VerifyService = app.verifyService
	router.PublishService = app.publishService
	router.PublisherService = app.publisherService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// bootstrapPublisher creates the first publisher account when the table is
// empty and PAYGATE_BOOTSTRAP_PUBLISHER is set. The plaintext API key is
// logged exactly once.
func (app *Application) bootstrapPublisher() error {
	if app.cfg.BootstrapPublisher == "" {
		return nil
	}

	ctx := context.Background()
	empty, err := app.db.Publishers().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check publishers table: %w", err)
	}
	if !empty {
		return nil
	}

	publisher, apiKey, err := app.publisherService.CreatePublisher(ctx, app.cfg.BootstrapPublisher)
	if err != nil {
		return fmt.Errorf("failed to bootstrap publisher: %w", err)
	}

	app.logger.Info("bootstrap publisher created, store this API key now, it will not be shown again",
		"publisher_id", publisher.ID,
		"name", publisher.Name,
		"api_key", apiKey,
	)
	return nil
}
