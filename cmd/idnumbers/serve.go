package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"idnumbers/internal/idnumber/catalogue"
	idmetrics "idnumbers/internal/idnumber/metrics"
	"idnumbers/internal/idnumber/service"
	"idnumbers/internal/platform/config"
	"idnumbers/internal/platform/httpserver"
	"idnumbers/internal/platform/logger"
	"idnumbers/internal/platform/metrics"
	httptransport "idnumbers/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server exposing the validation API. Settings come from
defaults, then the YAML file given by --config (or IDNUMBERS_CONFIG), then
IDNUMBERS_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", os.Getenv(config.EnvConfigFile), "Path to a YAML config file")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMaxBatchSize(cfg.MaxBatchSize),
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	}
	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
		opts = append(opts, service.WithMetrics(idmetrics.New(reg)))
	}
	svc := service.New(catalogue.Default(), opts...)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Service:  svc,
		Registry: reg,
	})
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting idnumbers",
		"addr", cfg.Addr,
		"formats", len(catalogue.Default().All()),
		"metrics_enabled", cfg.MetricsEnabled,
	)
	return httpserver.ListenAndRun(ctx, srv, cfg.ShutdownTimeout, log)
}
