package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reachlab/geodash/internal/application/dashboard"
	"github.com/reachlab/geodash/internal/config"
	rediscache "github.com/reachlab/geodash/internal/infrastructure/cache/redis"
	"github.com/reachlab/geodash/internal/infrastructure/ingest"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/reachlab/geodash/internal/interfaces/http"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "geodash",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	metrics := prometheus.NewAppMetrics(collector)

	source, err := newSource(cfg)
	if err != nil {
		return err
	}
	loader := ingest.NewLoader(source, cfg.Data, logger, metrics)

	var serviceOpts []dashboard.ServiceOption
	if cfg.Cache.Enabled {
		client, err := rediscache.NewClient(cfg.Cache, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		cache := rediscache.NewRedisCache(client, logger,
			rediscache.WithPrefix(cfg.Cache.KeyPrefix),
			rediscache.WithDefaultTTL(cfg.Cache.TTL),
		)
		serviceOpts = append(serviceOpts, dashboard.WithCache(cache, cfg.Cache.TTL))
	}

	svc := dashboard.NewService(loader, cfg.Map, logger, metrics, serviceOpts...)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Build the first snapshot before accepting traffic; a broken dataset on
	// startup is an operator error worth failing loudly on.
	if _, err := svc.Refresh(ctx, dashboard.TriggerStartup); err != nil {
		return err
	}

	if cfg.Data.Watch && cfg.Data.Source == "local" {
		watcher, err := dashboard.NewWatcher(cfg.Data, svc, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		watcher.Start(ctx)
	}

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Service:        svc,
		Logger:         logger,
		Metrics:        metrics,
		MetricsHandler: collector.Handler(),
		Mode:           cfg.Server.Mode,
	})
	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Stop(context.Background()); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func newSource(cfg *config.Config) (ingest.Source, error) {
	switch cfg.Data.Source {
	case "object":
		return ingest.NewObjectSource(cfg.ObjectStore)
	default:
		return ingest.NewDirSource(cfg.Data.Dir), nil
	}
}
