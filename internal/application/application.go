package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"investintake/internal/config"
	"investintake/internal/domain/service/intake"
	"investintake/internal/infrastructure/persistence"
	"investintake/internal/infrastructure/provider"
	"investintake/internal/server"
	"investintake/pkg/application/connectors"
	"investintake/pkg/application/modules"
	"investintake/pkg/logx"
	"investintake/pkg/middlewarex"
)

// Run wires the application together and blocks until the context is
// cancelled or a module fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger(ctx).Info("configuration loaded",
		logx.FieldAppName, cfg.App.Name,
		logx.FieldAppVersion, cfg.App.Version,
		"provider_configured", cfg.Provider.Configured(),
	)

	var providerClient intake.ProviderClient

	if cfg.Provider.Configured() {
		providerClient = provider.NewClient(provider.Options{
			BaseURL:      cfg.Provider.BaseURL,
			TokenURL:     cfg.Provider.TokenURL,
			ClientID:     cfg.Provider.ClientID,
			ClientSecret: cfg.Provider.ClientSecret,
			DealID:       cfg.Provider.DealID,
			LogBodyLimit: cfg.App.LogBodyLimit,
		})
	} else {
		logger(ctx).Warn("provider credentials absent, intake operations will answer 503")
	}

	var events intake.IntakeEventRepository

	if cfg.Postgres.DSN != "" {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db := pg.Client(ctx)
		defer pg.Close(ctx)

		if err = db.PingContext(ctx); err != nil {
			return fmt.Errorf("db.PingContext: %w", err)
		}

		events = persistence.NewIntakeEventRepository(db)
	} else {
		logger(ctx).Info("postgres DSN absent, intake event log disabled")
	}

	intakeService := intake.NewService(providerClient, events)

	srv := server.NewServer(
		server.NewDealServer(intakeService),
		server.NewInvestorServer(intakeService),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.App.LogBodyLimit),
		middlewarex.ResponseLogging(masker, cfg.App.LogBodyLimit),
	)

	srv.RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:    cfg.Server.ListenAddress,
		Handler: router,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsAddress,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
