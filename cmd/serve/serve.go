// Package serve implements the serve command: expose extraction as an
// HTTP API.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goimpressum/cmd/common"
	"github.com/jonesrussell/goimpressum/internal/api"
	"github.com/jonesrussell/goimpressum/internal/extract"
	"github.com/jonesrussell/goimpressum/internal/fetcher"
	"github.com/jonesrussell/goimpressum/internal/pipeline"
	"github.com/jonesrussell/goimpressum/internal/recognize"
)

const shutdownTimeout = 10 * time.Second

// Command returns the serve command.
func Command(cfgFile *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction over HTTP",
		Long: `Serve starts an HTTP API with a POST /api/v1/extract endpoint that
accepts a JSON list of URLs and returns the ranked extraction records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*cfgFile, *debug)
		},
	}
}

// runServe wires the pipeline behind the API server and runs it until
// interrupted.
func runServe(cfgFile string, debug bool) error {
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	cfg := deps.Config

	model, err := recognize.LoadOrTrain(cfg.Model.ArtifactPath)
	if err != nil {
		return fmt.Errorf("recognition model unavailable: %w", err)
	}
	deps.Logger.Info("recognition model ready", "version", model.Version)

	builder := pipeline.NewRecordBuilder(
		fetcher.New(cfg.Fetcher, deps.Logger),
		extract.New(model),
		deps.Logger,
	)
	orchestrator := pipeline.NewOrchestrator(builder, deps.Logger)

	apiServer := api.NewServer(orchestrator, cfg.Pipeline.MaxWorkers, deps.Logger)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      apiServer.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		deps.Logger.Info("starting HTTP server", "addr", cfg.Server.Address)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case serverErr := <-errChan:
		deps.Logger.Error("server error", "error", serverErr)
		return fmt.Errorf("server error: %w", serverErr)
	case sig := <-sigChan:
		deps.Logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	deps.Logger.Info("server stopped gracefully")
	return nil
}
