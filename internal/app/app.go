package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chrissnell/tempstats/internal/analysis"
	"github.com/chrissnell/tempstats/internal/controllers/restserver"
	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/internal/parser"
	"github.com/chrissnell/tempstats/internal/stats"
	"github.com/chrissnell/tempstats/pkg/config"
	"go.uber.org/zap"
)

// App serves reports for a readings file until it is told to stop
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// OptionsFromConfig builds the analysis options for the given configuration
func OptionsFromConfig(in config.InputData, st config.StatsData) (analysis.Options, error) {
	strategy, err := stats.ParseModeStrategy(st.Mode)
	if err != nil {
		return analysis.Options{}, err
	}

	opts := analysis.Options{ModeStrategy: strategy}
	if in.Strict {
		opts.Policy = parser.PolicyStrict
	}
	return opts, nil
}

// Run starts the REST server and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer a.configProvider.Close()

	input, err := a.configProvider.GetInputConfig()
	if err != nil {
		return fmt.Errorf("error loading input configuration: %w", err)
	}
	statsCfg, err := a.configProvider.GetStatsConfig()
	if err != nil {
		return fmt.Errorf("error loading stats configuration: %w", err)
	}
	restCfg, err := a.configProvider.GetRESTServerConfig()
	if err != nil {
		return fmt.Errorf("error loading REST server configuration: %w", err)
	}

	opts, err := OptionsFromConfig(*input, *statsCfg)
	if err != nil {
		return err
	}

	ctrl, err := restserver.NewController(ctx, &wg, *restCfg, input.Path, opts, a.logger)
	if err != nil {
		return fmt.Errorf("error creating REST server: %w", err)
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Infow("serving reports", "file", input.Path, "policy", opts.Policy.String(), "mode", opts.ModeStrategy.String())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	log.Info("waiting for the REST server to stop...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
